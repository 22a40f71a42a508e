// Package handler contains the HTTP handlers of the development backend.
package handler

import (
	"strconv"

	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/delivery/http/response"
	domainerrors "alerty/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 0
	defaultSize = 20
	maxSize     = 100
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// bindAndValidate binds the body into dst and runs the echo validator on it.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(dst)
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive number")
	}

	return id, nil
}

// queryID parses an optional numeric query parameter; absent means 0.
func queryID(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}

	return id, nil
}

// pageParams reads page and size with the list defaults applied.
func pageParams(c echo.Context) (page, size int) {
	page, size = defaultPage, defaultSize
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 {
		size = min(v, maxSize)
	}

	return page, size
}

// companyScope resolves the company a request works on. Callers bound to a
// company may only address their own.
func companyScope(c echo.Context, requested int64) (int64, error) {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return 0, domainerrors.ErrNoSession
	}
	if requested == 0 {
		return claims.CompanyID, nil
	}
	if claims.CompanyID != 0 && claims.CompanyID != requested {
		return 0, domainerrors.ErrForbidden
	}

	return requested, nil
}

// Package response writes the bodies of the development backend. Successful
// answers are the bare resource; failures use the error body the client parses.
package response

import (
	"net/http"

	deliverycontext "alerty/internal/delivery/context"
	domainerrors "alerty/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OK writes data with status 200.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes data with status 201.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent answers 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// AppError writes err with its own status.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return c.JSON(err.HTTPCode(), domainerrors.NewErrorResponse(err, deliverycontext.GetRequestID(c)))
}

// Error writes an error body for an arbitrary status.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return AppError(c, domainerrors.NewBaseError(statusCode, errorCode, message, details))
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

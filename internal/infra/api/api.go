// Package api implements the typed resource services on top of the shared
// HTTP client.
package api

import (
	"net/url"
	"strconv"

	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const defaultPageSize = 20

// Params holds dependencies shared by every resource service, injected by Fx
type Params struct {
	fx.In

	Requester service.Requester
	Validate  *validator.Validate `optional:"true"`
}

// NewValidator returns the validator used for request bodies.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func validatorOrDefault(v *validator.Validate) *validator.Validate {
	if v == nil {
		return NewValidator()
	}

	return v
}

// validateRequest checks the struct tags of req before anything is sent.
func validateRequest(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// pageQuery adds page and size with the list defaults applied.
func pageQuery(q url.Values, page, size int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	return q
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Module provides the resource services FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewValidator,
		NewAuthService,
		NewAlertService,
		NewUserService,
		NewDeviceService,
	),
)

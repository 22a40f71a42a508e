// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "alerty/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates bound request bodies.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures are returned as ErrValidationFailed
// carrying the field errors as details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

package query

import (
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/errors"
)

// ErrQueryDisabled is returned by a fetch whose query is not enabled.
var ErrQueryDisabled = errors.New("query is disabled")

// Error is the failure state of a query or mutation.
type Error struct {
	Message string
	Status  int // HTTP status, 0 when the request never got an answer.
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// toError wraps err into an *Error unless it already is one.
func toError(err error) error {
	if err == nil {
		return nil
	}

	var qErr *Error
	if errors.As(err, &qErr) {
		return err
	}
	if errors.Is(err, ErrQueryDisabled) {
		return err
	}

	msg := err.Error()
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message()
	}

	return &Error{
		Message: msg,
		Status:  domainerrors.StatusCode(err),
		Err:     err,
	}
}

// retryable reports whether a failed fetch may be tried again. Client errors
// are final.
func retryable(err error) bool {
	if errors.Is(err, ErrQueryDisabled) {
		return false
	}

	status := domainerrors.StatusCode(err)

	return status < 400 || status >= 500
}

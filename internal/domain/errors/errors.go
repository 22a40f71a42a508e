package errors

import (
	"fmt"
	"net/http"

	"alerty/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two base errors by business code, so a copy made with
// WithDetails still matches its predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales incorrectas",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Sesión expirada. Vuelve a iniciar sesión.",
		"",
	)

	ErrNoSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_SESSION",
		"No hay una sesión activa",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido o expirado",
		"",
	)

	// Notification-related errors
	ErrNotificationsDisabled = NewBaseError(
		http.StatusConflict,
		"NOTIFICATIONS_DISABLED",
		"Activa las notificaciones antes de activar el sonido",
		"",
	)

	ErrUserNotLoaded = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_LOADED",
		"No se pudo cargar el usuario",
		"",
	)

	// Resource-related errors
	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"No se encontró la alerta",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No se encontró el usuario",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"El nombre de usuario ya existe",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)
)

// APIError is a non-2xx answer from the Alerty backend.
type APIError struct {
	Status  int    // HTTP status of the response
	Code    string // Backend error code, when the body carried one
	Msg     string // Backend message, when the body carried one
	Method  string
	Path    string
	details string
}

// NewAPIError creates an error for a failed backend call.
func NewAPIError(status int, code, message, details string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Msg:     message,
		details: details,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Message()
	if e.Path == "" {
		return fmt.Sprintf("api error %d: %s", e.Status, msg)
	}

	return fmt.Sprintf("%s %s: api error %d: %s", e.Method, e.Path, e.Status, msg)
}

// HTTPCode returns the HTTP status code
func (e *APIError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the backend error code, or a generic one derived from the status.
func (e *APIError) ErrorCode() string {
	if e.Code != "" {
		return e.Code
	}

	return fmt.Sprintf("HTTP_%d", e.Status)
}

// Message returns the backend message, or the standard status text.
func (e *APIError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if text := http.StatusText(e.Status); text != "" {
		return text
	}

	return "unexpected response"
}

// Details returns the raw response body excerpt
func (e *APIError) Details() string {
	return e.details
}

// IsUnauthorized reports whether the backend rejected the credentials or the token.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// StatusCode returns the HTTP status carried by err, or 0 when there is none
// (transport failures, cancelled contexts).
func StatusCode(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return 0
}

// Operation names the user action an error is displayed for.
type Operation string

const (
	OpLogin   Operation = "login"
	OpDefault Operation = ""
)

// DisplayMessage returns the message shown to the user for err. Authorization
// failures mean wrong credentials during login and an expired session anywhere else.
func DisplayMessage(err error, op Operation) string {
	if err == nil {
		return ""
	}

	switch StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		if op == OpLogin {
			return ErrInvalidCredentials.Message()
		}

		return ErrSessionExpired.Message()
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

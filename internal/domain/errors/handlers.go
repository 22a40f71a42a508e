package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ALERT_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse is the error body written by the development backend. The
// top-level message and error fields are what the client reads back.
type ErrorResponse struct {
	Message   string `json:"message"`
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse builds the body for an AppError.
func NewErrorResponse(err AppError, requestID string) *ErrorResponse {
	resp := &ErrorResponse{
		Message:   err.Message(),
		Error:     err.ErrorCode(),
		RequestID: requestID,
	}
	if d := err.Details(); d != "" {
		resp.Details = d
	}

	return resp
}

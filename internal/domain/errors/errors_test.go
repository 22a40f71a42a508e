package errors

import (
	"context"
	"net/http"
	"testing"

	"alerty/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "api error", err: NewAPIError(http.StatusForbidden, "", "", ""), want: http.StatusForbidden},
		{name: "wrapped api error", err: errors.Wrap(NewAPIError(http.StatusNotFound, "", "", ""), "get alert"), want: http.StatusNotFound},
		{name: "base error", err: ErrNoSession, want: http.StatusUnauthorized},
		{name: "transport error", err: errors.Wrap(context.DeadlineExceeded, "do request"), want: 0},
		{name: "nil", err: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestDisplayMessage(t *testing.T) {
	unauthorized := NewAPIError(http.StatusUnauthorized, "", "Bad credentials", "")

	assert.Equal(t, ErrInvalidCredentials.Message(), DisplayMessage(unauthorized, OpLogin))
	assert.Equal(t, ErrSessionExpired.Message(), DisplayMessage(unauthorized, OpDefault))
	assert.Equal(t, ErrSessionExpired.Message(), DisplayMessage(NewAPIError(http.StatusForbidden, "", "", ""), OpDefault))
	assert.Equal(t, "Alert not found", DisplayMessage(NewAPIError(http.StatusNotFound, "", "Alert not found", ""), OpDefault))
	assert.Equal(t, ErrNotificationsDisabled.Message(), DisplayMessage(ErrNotificationsDisabled, OpDefault))
	assert.Equal(t, "dial tcp: refused", DisplayMessage(errors.New("dial tcp: refused"), OpDefault))
	assert.Empty(t, DisplayMessage(nil, OpDefault))
}

func TestAPIError_Message(t *testing.T) {
	err := NewAPIError(http.StatusBadGateway, "", "", "")
	assert.Equal(t, "Bad Gateway", err.Message())
	assert.Equal(t, "HTTP_502", err.ErrorCode())
	assert.Equal(t, "api error 502: Bad Gateway", err.Error())

	err.Method, err.Path = http.MethodGet, "/api/alerts/7"
	assert.Equal(t, "GET /api/alerts/7: api error 502: Bad Gateway", err.Error())
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("username is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInternalError))
}

package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	deliverycontext "alerty/internal/delivery/context"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	mockService "alerty/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// clientFixtures holds all test dependencies for client tests.
type clientFixtures struct {
	client *Client
	tokens *mockService.MockTokenSource
	server *httptest.Server
	last   *http.Request
	body   []byte
}

func createTestClient(t *testing.T, status int, response string) *clientFixtures {
	fx := &clientFixtures{tokens: mockService.NewMockTokenSource(t)}

	fx.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fx.last = r.Clone(context.Background())
		fx.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(fx.server.Close)

	fx.client = NewClient(fx.server.URL+"/", time.Second, testLogger(), BearerToken(fx.tokens), RequestID())

	return fx
}

func TestClient_AttachesBearerToken(t *testing.T) {
	fx := createTestClient(t, http.StatusOK, `{"id":7,"severity":"ALTA"}`)
	ctx := context.Background()

	fx.tokens.EXPECT().GetValidToken(ctx).Return("abc.def.ghi", true)

	var out struct {
		ID       int64  `json:"id"`
		Severity string `json:"severity"`
	}
	err := fx.client.Do(ctx, service.Request{Method: http.MethodGet, Path: "/api/alerts/7"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc.def.ghi", fx.last.Header.Get("Authorization"))
	assert.Equal(t, "/api/alerts/7", fx.last.URL.Path)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "ALTA", out.Severity)

	_, err = uuid.Parse(fx.last.Header.Get(deliverycontext.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestClient_WithoutTokenGoesUnauthenticated(t *testing.T) {
	fx := createTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	fx.tokens.EXPECT().GetValidToken(ctx).Return("", false)

	err := fx.client.Do(ctx, service.Request{Method: http.MethodGet, Path: "/api/alerts"}, nil)
	require.NoError(t, err)

	assert.Empty(t, fx.last.Header.Get("Authorization"))
}

func TestClient_SendsQueryAndJSONBody(t *testing.T) {
	fx := createTestClient(t, http.StatusCreated, ``)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	fx.tokens.EXPECT().GetValidToken(ctx).Return("", false)

	req := service.Request{
		Method: http.MethodPost,
		Path:   "/api/devices/register",
		Query:  url.Values{"companyId": []string{"3"}},
		Body:   map[string]any{"userId": 11, "platform": "android"},
	}
	require.NoError(t, fx.client.Do(ctx, req, nil))

	assert.Equal(t, "3", fx.last.URL.Query().Get("companyId"))
	assert.Equal(t, "application/json", fx.last.Header.Get("Content-Type"))
	assert.Equal(t, "req-42", fx.last.Header.Get(deliverycontext.HeaderXRequestID))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(fx.body, &sent))
	assert.Equal(t, "android", sent["platform"])
}

func TestClient_ErrorStatusBecomesAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		response    string
		wantMessage string
	}{
		{name: "message field", status: http.StatusUnauthorized, response: `{"message":"Bad credentials","error":"UNAUTHORIZED"}`, wantMessage: "Bad credentials"},
		{name: "error field only", status: http.StatusForbidden, response: `{"error":"Forbidden"}`, wantMessage: "Forbidden"},
		{name: "plain text body", status: http.StatusInternalServerError, response: `boom`, wantMessage: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, tt.status, tt.response)
			ctx := context.Background()
			fx.tokens.EXPECT().GetValidToken(ctx).Return("", false)

			err := fx.client.Do(ctx, service.Request{Method: http.MethodGet, Path: "/api/alerts/1"}, nil)
			require.Error(t, err)

			var apiErr *domainerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message())
			assert.Equal(t, tt.status, domainerrors.StatusCode(err))
		})
	}
}

func TestClient_TransportErrorHasNoStatus(t *testing.T) {
	fx := createTestClient(t, http.StatusOK, `{}`)
	fx.server.Close()
	ctx := context.Background()

	fx.tokens.EXPECT().GetValidToken(ctx).Return("", false)

	err := fx.client.Do(ctx, service.Request{Method: http.MethodGet, Path: "/api/alerts"}, nil)
	require.Error(t, err)
	assert.Zero(t, domainerrors.StatusCode(err))
}

func TestClient_InterceptorErrorRejectsRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	failing := func(context.Context, *http.Request) error {
		return errors.New("secure storage unavailable")
	}
	client := NewClient(server.URL, time.Second, testLogger(), failing)

	err := client.Do(context.Background(), service.Request{Method: http.MethodGet, Path: "/api/alerts"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secure storage unavailable")
	assert.Zero(t, calls)
}

func TestClient_DecodeFailure(t *testing.T) {
	fx := createTestClient(t, http.StatusOK, `{"id":"seven"}`)
	ctx := context.Background()
	fx.tokens.EXPECT().GetValidToken(ctx).Return("", false)

	var out struct {
		ID int64 `json:"id"`
	}
	err := fx.client.Do(ctx, service.Request{Method: http.MethodGet, Path: "/api/alerts/7"}, &out)
	assert.Error(t, err)
	assert.Zero(t, domainerrors.StatusCode(err))
}

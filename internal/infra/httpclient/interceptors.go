package httpclient

import (
	"context"
	"net/http"

	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/domain/service"
)

// BearerToken sets the Authorization header when the token source has a
// valid token. Without one the request goes out unauthenticated and the
// backend answers 401.
func BearerToken(tokens service.TokenSource) Interceptor {
	return func(ctx context.Context, req *http.Request) error {
		if token, ok := tokens.GetValidToken(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		return nil
	}
}

// RequestID tags the request with the request id found in ctx, or a fresh one.
func RequestID() Interceptor {
	return func(ctx context.Context, req *http.Request) error {
		requestID := deliverycontext.GetRequestIDFromContext(ctx)
		if requestID == "" {
			requestID = deliverycontext.NewRequestID()
		}
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

		return nil
	}
}

package service

import (
	"context"
	"net/url"
)

// Request describes one call against the Alerty backend.
type Request struct {
	Method string
	Path   string     // Path relative to the configured base URL, e.g. "/api/alerts/7".
	Query  url.Values // Optional query string.
	Body   any        // Encoded as JSON when non-nil.
}

// Requester sends requests to the backend and decodes JSON answers into out.
// A nil out discards the response body. Non-2xx answers are returned as
// *errors.APIError from the domain errors package.
type Requester interface {
	Do(ctx context.Context, req Request, out any) error
}

// TokenSource hands out the bearer token for outgoing requests. ok is false
// when there is no usable token, in which case the request goes out
// unauthenticated.
type TokenSource interface {
	GetValidToken(ctx context.Context) (token string, ok bool)
}

// Package httpclient is the single pre-configured sender used for every call
// to the Alerty backend.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"alerty/config"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"go.uber.org/fx"
)

const (
	maxResponseSize = 4 << 20
	maxErrorDetails = 512
)

// Interceptor mutates an outgoing request. A returned error rejects the request.
type Interceptor func(ctx context.Context, req *http.Request) error

// Client sends JSON requests relative to a base URL.
type Client struct {
	baseURL      string
	http         *http.Client
	interceptors []Interceptor
	logger       *slog.Logger
}

var _ service.Requester = (*Client)(nil)

// Params holds dependencies for the HTTP client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Tokens service.TokenSource
	Logger *slog.Logger
}

// New builds the client from configuration with the bearer and request-id interceptors.
func New(params Params) *Client {
	return NewClient(
		params.Config.API.BaseURL,
		params.Config.API.Timeout,
		params.Logger,
		BearerToken(params.Tokens),
		RequestID(),
	)
}

// NewClient creates a client. Interceptors run in the given order before every request.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, interceptors ...Interceptor) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		interceptors: interceptors,
		logger:       logger,
	}
}

// Do sends req and decodes a JSON answer into out. A nil out discards the body.
func (c *Client) Do(ctx context.Context, req service.Request, out any) error {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	for _, intercept := range c.interceptors {
		if err := intercept(ctx, httpReq); err != nil {
			return errors.Wrapf(err, "%s %s: prepare request", req.Method, req.Path)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("Request failed",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "%s %s", req.Method, req.Path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.Wrapf(err, "%s %s: read response", req.Method, req.Path)
	}

	c.logger.Debug("Request completed",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp.StatusCode, body)
		apiErr.Method = req.Method
		apiErr.Path = req.Path

		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "%s %s: decode response", req.Method, req.Path)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, req service.Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s: encode body", req.Method, req.Path)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s: build request", req.Method, req.Path)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}

// errorBody covers the error shapes the backend answers with.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func parseAPIError(status int, body []byte) *domainerrors.APIError {
	details := strings.TrimSpace(string(body))
	if len(details) > maxErrorDetails {
		details = details[:maxErrorDetails]
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domainerrors.NewAPIError(status, "", "", details)
	}

	if parsed.Message != "" {
		return domainerrors.NewAPIError(status, parsed.Error, parsed.Message, details)
	}

	return domainerrors.NewAPIError(status, "", parsed.Error, details)
}

// Module provides the HTTP client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(c *Client) service.Requester { return c },
	),
)

package api

import (
	"context"
	"net/http"

	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"github.com/go-playground/validator/v10"
)

type authService struct {
	requester service.Requester
	validate  *validator.Validate
}

// NewAuthService creates the auth resource service.
func NewAuthService(params Params) service.AuthService {
	return &authService{
		requester: params.Requester,
		validate:  validatorOrDefault(params.Validate),
	}
}

// LoginWithUsername posts the credentials to /login.
func (s *authService) LoginWithUsername(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	return s.login(ctx, "/login", req)
}

// LoginWithDni posts the national id to /auth/login-dni.
func (s *authService) LoginWithDni(ctx context.Context, req service.DniLoginRequest) (*service.AuthResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	return s.login(ctx, "/auth/login-dni", req)
}

func (s *authService) login(ctx context.Context, path string, body any) (*service.AuthResponse, error) {
	var resp service.AuthResponse
	if err := s.requester.Do(ctx, service.Request{Method: http.MethodPost, Path: path, Body: body}, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, errors.Errorf("%s: response carries no token", path)
	}

	return &resp, nil
}

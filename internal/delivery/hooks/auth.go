package hooks

import (
	"context"

	"alerty/internal/domain/service"
	"alerty/internal/query"
)

// LoginWithUsername logs in with username and password.
func (h *Hooks) LoginWithUsername(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error) {
	return query.Mutate(ctx,
		func(ctx context.Context) (*service.AuthResponse, error) {
			return h.auth.LoginWithUsername(ctx, req)
		},
		nil,
	)
}

// LoginWithDni logs in with a national id.
func (h *Hooks) LoginWithDni(ctx context.Context, req service.DniLoginRequest) (*service.AuthResponse, error) {
	return query.Mutate(ctx,
		func(ctx context.Context) (*service.AuthResponse, error) {
			return h.auth.LoginWithDni(ctx, req)
		},
		nil,
	)
}

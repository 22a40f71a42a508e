package service

import "context"

// LoginRequest is the body of a username/password login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DniLoginRequest is the body of a national-id login.
type DniLoginRequest struct {
	Dni string `json:"dni" validate:"required"`
}

// AuthResponse is returned by both login endpoints. Every field but the token is optional.
type AuthResponse struct {
	Token     string  `json:"token"`
	Message   *string `json:"message,omitempty"`
	Username  *string `json:"username,omitempty"`
	Dni       *string `json:"dni,omitempty"`
	Role      *string `json:"role,omitempty"`
	CompanyID *int64  `json:"companyId,omitempty"`
	UserID    *int64  `json:"userId,omitempty"`
}

// AuthService logs a user in against the backend.
type AuthService interface {
	// LoginWithUsername authenticates with username and password.
	LoginWithUsername(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// LoginWithDni authenticates with a national id only.
	LoginWithDni(ctx context.Context, req DniLoginRequest) (*AuthResponse, error)
}

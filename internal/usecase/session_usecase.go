// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/service"
)

// AuthHooks is the part of the hook layer the session use case drives.
type AuthHooks interface {
	LoginWithUsername(ctx context.Context, req service.LoginRequest) (*service.AuthResponse, error)
	LoginWithDni(ctx context.Context, req service.DniLoginRequest) (*service.AuthResponse, error)
	ClearCache()
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// LoginWithUsername authenticates with username and password and stores the session.
	LoginWithUsername(ctx context.Context, username, password string) (*entity.Credentials, error)

	// LoginWithDni authenticates with a national id and stores the session.
	LoginWithDni(ctx context.Context, dni string) (*entity.Credentials, error)

	// Logout forgets the session and every cached value.
	Logout(ctx context.Context)

	// CurrentSession returns the stored session, or nil when the user has to log in.
	CurrentSession(ctx context.Context) *entity.Credentials
}

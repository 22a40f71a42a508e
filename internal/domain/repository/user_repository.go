package repository

import (
	"context"

	"alerty/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// StoredUser is a user together with its login secret, as kept by the backend.
type StoredUser struct {
	entity.User
	PasswordHash string
}

// UserQuery narrows a user listing.
type UserQuery struct {
	CompanyID int64
	Search    string // Matched against username, full name and dni.
	Page      int
	Size      int
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*StoredUser, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*StoredUser, error)

	// FindByDni retrieves a single user by national id.
	FindByDni(ctx context.Context, dni string) (*StoredUser, error)

	// List returns a page of the users of a company.
	List(ctx context.Context, q UserQuery) (*entity.Page[entity.User], error)

	// Create persists a new user and assigns its id.
	Create(ctx context.Context, user *StoredUser) error

	// Update modifies an existing user. An empty PasswordHash keeps the current one.
	Update(ctx context.Context, user *StoredUser) error

	// Delete removes a user.
	Delete(ctx context.Context, id int64) error
}

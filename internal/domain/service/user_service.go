package service

import (
	"context"

	"alerty/internal/domain/entity"
)

// UserSearchParams selects a page of a company's users. The JSON form is part of the cache key.
type UserSearchParams struct {
	CompanyID int64  `json:"companyId,omitempty"`
	Query     string `json:"q,omitempty"`
	Page      int    `json:"page"`
	Size      int    `json:"size"`
}

// UserLookup identifies a single user, optionally scoped to a company.
type UserLookup struct {
	CompanyID int64 `json:"companyId,omitempty"`
	UserID    int64 `json:"userId"`
}

// UserInput is the writable part of a user. Password is only required on create.
type UserInput struct {
	Username string `json:"username" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Dni      string `json:"dni,omitempty"`
	Role     string `json:"role" validate:"required"`
	Active   bool   `json:"active"`
	Password string `json:"password,omitempty"`
}

// UserService manages users on the backend.
type UserService interface {
	SearchUsers(ctx context.Context, params UserSearchParams) (*entity.Page[entity.User], error)
	GetUser(ctx context.Context, lookup UserLookup) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, companyID int64, input UserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, companyID, userID int64, input UserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, companyID, userID int64) error
}

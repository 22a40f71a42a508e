package api

import (
	"context"
	"net/http"
	"net/url"

	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

type userService struct {
	requester service.Requester
	validate  *validator.Validate
}

// NewUserService creates the user resource service.
func NewUserService(params Params) service.UserService {
	return &userService{
		requester: params.Requester,
		validate:  validatorOrDefault(params.Validate),
	}
}

// SearchUsers lists the users of a company, optionally filtered by q.
func (s *userService) SearchUsers(ctx context.Context, params service.UserSearchParams) (*entity.Page[entity.User], error) {
	if params.CompanyID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("companyId is required")
	}

	q := url.Values{}
	if params.Query != "" {
		q.Set("q", params.Query)
	}

	var page entity.Page[entity.User]
	req := service.Request{
		Method: http.MethodGet,
		Path:   companyUsersPath(params.CompanyID),
		Query:  pageQuery(q, params.Page, params.Size),
	}
	if err := s.requester.Do(ctx, req, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetUser reads a user by id, through the company scope when one is given.
func (s *userService) GetUser(ctx context.Context, lookup service.UserLookup) (*entity.User, error) {
	path := "/api/users/" + id(lookup.UserID)
	if lookup.CompanyID > 0 {
		path = companyUsersPath(lookup.CompanyID) + "/" + id(lookup.UserID)
	}

	return s.getOne(ctx, path)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	return s.getOne(ctx, "/api/users/by-username/"+url.PathEscape(username))
}

func (s *userService) CreateUser(ctx context.Context, companyID int64, input service.UserInput) (*entity.User, error) {
	if err := validateRequest(s.validate, input); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	var user entity.User
	req := service.Request{Method: http.MethodPost, Path: companyUsersPath(companyID), Body: input}
	if err := s.requester.Do(ctx, req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, companyID, userID int64, input service.UserInput) (*entity.User, error) {
	if err := validateRequest(s.validate, input); err != nil {
		return nil, err
	}

	var user entity.User
	req := service.Request{Method: http.MethodPut, Path: companyUsersPath(companyID) + "/" + id(userID), Body: input}
	if err := s.requester.Do(ctx, req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userService) DeleteUser(ctx context.Context, companyID, userID int64) error {
	req := service.Request{Method: http.MethodDelete, Path: companyUsersPath(companyID) + "/" + id(userID)}

	return s.requester.Do(ctx, req, nil)
}

func (s *userService) getOne(ctx context.Context, path string) (*entity.User, error) {
	var user entity.User
	if err := s.requester.Do(ctx, service.Request{Method: http.MethodGet, Path: path}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func companyUsersPath(companyID int64) string {
	return "/api/companies/" + id(companyID) + "/users"
}

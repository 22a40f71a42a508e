package handler

import (
	"log/slog"
	"strings"

	"alerty/internal/delivery/http/response"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/repository"
	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the user management endpoints.
type UserHandler struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(users repository.UserRepository, hasher service.PasswordHasher, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Search returns a page of a company's users matching q.
func (h *UserHandler) Search(c echo.Context) error {
	companyID, err := h.company(c)
	if err != nil {
		return err
	}

	page, size := pageParams(c)
	result, err := h.users.List(c.Request().Context(), repository.UserQuery{
		CompanyID: companyID,
		Search:    strings.TrimSpace(c.QueryParam("q")),
		Page:      page,
		Size:      size,
	})
	if err != nil {
		return errors.Wrap(err, "failed to list users")
	}

	return response.OK(c, result)
}

// GetInCompany returns a user of a company.
func (h *UserHandler) GetInCompany(c echo.Context) error {
	companyID, err := h.company(c)
	if err != nil {
		return err
	}

	user, err := h.find(c, "userId")
	if err != nil {
		return err
	}
	if user.CompanyID != companyID {
		return domainerrors.ErrUserNotFound
	}

	return response.OK(c, user.User)
}

// Get returns a user by id, limited to the caller's company.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.find(c, "id")
	if err != nil {
		return err
	}
	if _, err := companyScope(c, user.CompanyID); err != nil {
		return domainerrors.ErrUserNotFound
	}

	return response.OK(c, user.User)
}

// GetByUsername returns a user by username, limited to the caller's company.
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.users.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapUserError(err, "failed to find user")
	}
	if _, err := companyScope(c, user.CompanyID); err != nil {
		return domainerrors.ErrUserNotFound
	}

	return response.OK(c, user.User)
}

// Create adds a user to a company. A password is required.
func (h *UserHandler) Create(c echo.Context) error {
	companyID, err := h.company(c)
	if err != nil {
		return err
	}

	var input service.UserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}
	if input.Password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user, err := userFromInput(input, companyID)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		return mapUserError(err, "failed to create user")
	}

	h.logger.Info("User created",
		slog.Int64("user_id", user.ID),
		slog.Int64("company_id", companyID),
	)

	return response.Created(c, user.User)
}

// Update modifies a user of a company. An empty password keeps the current one.
func (h *UserHandler) Update(c echo.Context) error {
	companyID, err := h.company(c)
	if err != nil {
		return err
	}

	current, err := h.find(c, "userId")
	if err != nil {
		return err
	}
	if current.CompanyID != companyID {
		return domainerrors.ErrUserNotFound
	}

	var input service.UserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := userFromInput(input, companyID)
	if err != nil {
		return err
	}
	user.ID = current.ID
	if input.Password != "" {
		if user.PasswordHash, err = h.hasher.Hash(input.Password); err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
	}
	if err := h.users.Update(c.Request().Context(), user); err != nil {
		return mapUserError(err, "failed to update user")
	}

	return response.OK(c, user.User)
}

// Delete removes a user of a company.
func (h *UserHandler) Delete(c echo.Context) error {
	companyID, err := h.company(c)
	if err != nil {
		return err
	}

	user, err := h.find(c, "userId")
	if err != nil {
		return err
	}
	if user.CompanyID != companyID {
		return domainerrors.ErrUserNotFound
	}

	if err := h.users.Delete(c.Request().Context(), user.ID); err != nil {
		return mapUserError(err, "failed to delete user")
	}

	return response.NoContent(c)
}

func (h *UserHandler) company(c echo.Context) (int64, error) {
	requested, err := pathID(c, "companyId")
	if err != nil {
		return 0, err
	}

	return companyScope(c, requested)
}

func (h *UserHandler) find(c echo.Context, param string) (*repository.StoredUser, error) {
	id, err := pathID(c, param)
	if err != nil {
		return nil, err
	}

	user, err := h.users.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, mapUserError(err, "failed to find user")
	}

	return user, nil
}

func mapUserError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUserAlreadyExists
	default:
		return errors.Wrap(err, msg)
	}
}

func userFromInput(input service.UserInput, companyID int64) (*repository.StoredUser, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + input.Role)
	}

	return &repository.StoredUser{
		User: entity.User{
			Username:  strings.TrimSpace(input.Username),
			FullName:  strings.TrimSpace(input.FullName),
			Dni:       strings.TrimSpace(input.Dni),
			Role:      role.String(),
			Active:    input.Active,
			CompanyID: companyID,
		},
	}, nil
}

package handler

import (
	"log/slog"

	"alerty/internal/delivery/http/response"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/repository"
	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"github.com/labstack/echo/v4"
)

const loginMessage = "Inicio de sesión exitoso"

// AuthHandler issues tokens for the seeded accounts.
type AuthHandler struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(users repository.UserRepository, hasher service.PasswordHasher, tokens service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login handles a username and password login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input service.LoginRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.users.FindByUsername(c.Request().Context(), input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCredentials
		}

		return errors.Wrap(err, "failed to find user")
	}
	if !h.hasher.Check(input.Password, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	return h.issue(c, user, false)
}

// LoginWithDni handles a national-id login.
func (h *AuthHandler) LoginWithDni(c echo.Context) error {
	var input service.DniLoginRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.users.FindByDni(c.Request().Context(), input.Dni)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCredentials
		}

		return errors.Wrap(err, "failed to find user")
	}

	return h.issue(c, user, true)
}

func (h *AuthHandler) issue(c echo.Context, user *repository.StoredUser, byDni bool) error {
	if !user.Active {
		return domainerrors.ErrForbidden.WithDetails("user is inactive")
	}

	token, err := h.tokens.GenerateToken(&user.User)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	message := loginMessage
	resp := service.AuthResponse{
		Token:   token,
		Message: &message,
		Role:    &user.Role,
		UserID:  &user.ID,
	}
	if user.CompanyID > 0 {
		resp.CompanyID = &user.CompanyID
	}
	if byDni {
		resp.Dni = &user.Dni
	} else {
		resp.Username = &user.Username
	}

	h.logger.Info("User logged in",
		slog.Int64("user_id", user.ID),
		slog.Bool("by_dni", byDni),
	)

	return response.OK(c, resp)
}

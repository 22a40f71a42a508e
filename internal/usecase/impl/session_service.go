// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/errors"
	"alerty/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth   usecase.AuthHooks
	store  service.CredentialStore
	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	auth usecase.AuthHooks,
	store service.CredentialStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		auth:   auth,
		store:  store,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginWithUsername authenticates with username and password.
func (srv *sessionService) LoginWithUsername(ctx context.Context, username, password string) (*entity.Credentials, error) {
	username = strings.TrimSpace(username)
	srv.log(ctx).Debug("Logging in with username", slog.String("username", username))

	resp, err := srv.auth.LoginWithUsername(ctx, service.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, srv.loginFailed(ctx, err)
	}
	if err := srv.checkToken(ctx, resp); err != nil {
		return nil, err
	}

	// Keep the login identity when the response omits it.
	if resp.Username == nil && username != "" {
		resp.Username = &username
	}

	return srv.save(ctx, resp)
}

// LoginWithDni authenticates with a national id.
func (srv *sessionService) LoginWithDni(ctx context.Context, dni string) (*entity.Credentials, error) {
	dni = strings.TrimSpace(dni)
	srv.log(ctx).Debug("Logging in with dni")

	resp, err := srv.auth.LoginWithDni(ctx, service.DniLoginRequest{Dni: dni})
	if err != nil {
		return nil, srv.loginFailed(ctx, err)
	}
	if err := srv.checkToken(ctx, resp); err != nil {
		return nil, err
	}

	if resp.Dni == nil && dni != "" {
		resp.Dni = &dni
	}

	return srv.save(ctx, resp)
}

// Logout forgets the stored session and drops the query cache.
func (srv *sessionService) Logout(ctx context.Context) {
	srv.store.Clear(ctx)
	srv.auth.ClearCache()

	srv.log(ctx).Info("Logged out")
}

// CurrentSession returns the stored session when its token is still valid.
// An expired token clears the record and yields nil.
func (srv *sessionService) CurrentSession(ctx context.Context) *entity.Credentials {
	if _, ok := srv.store.GetValidToken(ctx); !ok {
		return nil
	}

	return srv.store.GetAuthData(ctx)
}

func (srv *sessionService) save(ctx context.Context, resp *service.AuthResponse) (*entity.Credentials, error) {
	creds := entity.Credentials{
		Token:     resp.Token,
		Username:  resp.Username,
		Dni:       resp.Dni,
		Role:      resp.Role,
		CompanyID: resp.CompanyID,
		UserID:    resp.UserID,
	}

	if err := srv.store.Save(ctx, creds); err != nil {
		srv.log(ctx).Error("Failed to save session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save session")
	}

	srv.log(ctx).Info("Logged in", slog.String("user", creds.DisplayName()))

	return &creds, nil
}

// checkToken rejects a successful login answer that carries no token, since
// nothing could be stored for the session.
func (srv *sessionService) checkToken(ctx context.Context, resp *service.AuthResponse) error {
	if resp != nil && resp.Token != "" {
		return nil
	}

	srv.log(ctx).Warn("Login response carried no token")

	return domainerrors.ErrTokenInvalid.WithDetails("login response carried no token")
}

func (srv *sessionService) loginFailed(ctx context.Context, err error) error {
	switch domainerrors.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		srv.log(ctx).Info("Login rejected")

		return errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
	}

	srv.log(ctx).Warn("Login failed", slog.Any("error", err))

	return errors.Wrap(err, "failed to login")
}

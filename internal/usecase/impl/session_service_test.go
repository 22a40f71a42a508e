package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	mockService "alerty/internal/mocks/service"
	mockUsecase "alerty/internal/mocks/usecase"
	"alerty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service usecase.SessionUsecase
	auth    *mockUsecase.MockAuthHooks
	store   *mockService.MockCredentialStore
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	auth := mockUsecase.NewMockAuthHooks(t)
	store := mockService.NewMockCredentialStore(t)

	return sessionServiceFixtures{
		service: NewSessionService(auth, store, testLogger()),
		auth:    auth,
		store:   store,
	}
}

func TestSessionService_LoginWithUsername_SavesEveryField(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().
		LoginWithUsername(ctx, service.LoginRequest{Username: "operador", Password: "secreto"}).
		Return(&service.AuthResponse{
			Token:     "jwt",
			Role:      ptr("OPERATOR"),
			CompanyID: ptr(int64(3)),
			UserID:    ptr(int64(11)),
		}, nil)

	want := entity.Credentials{
		Token:     "jwt",
		Username:  ptr("operador"),
		Role:      ptr("OPERATOR"),
		CompanyID: ptr(int64(3)),
		UserID:    ptr(int64(11)),
	}
	fx.store.EXPECT().Save(ctx, want).Return(nil)

	creds, err := fx.service.LoginWithUsername(ctx, " operador ", "secreto")

	require.NoError(t, err)
	assert.Equal(t, want, *creds)
}

func TestSessionService_LoginWithoutToken(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().
		LoginWithUsername(ctx, service.LoginRequest{Username: "operador", Password: "secreto"}).
		Return(&service.AuthResponse{Message: ptr("Inicio de sesión exitoso"), UserID: ptr(int64(11))}, nil)
	fx.auth.EXPECT().
		LoginWithDni(ctx, service.DniLoginRequest{Dni: "12345678"}).
		Return(nil, nil)

	creds, err := fx.service.LoginWithUsername(ctx, "operador", "secreto")
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	creds, err = fx.service.LoginWithDni(ctx, "12345678")
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_LoginWithDni_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		fx := createTestSessionService(t)
		ctx := context.Background()

		fx.auth.EXPECT().
			LoginWithDni(ctx, service.DniLoginRequest{Dni: "12345678"}).
			Return(nil, domainerrors.NewAPIError(status, "", "Bad credentials", ""))

		creds, err := fx.service.LoginWithDni(ctx, "12345678")

		assert.Nil(t, creds)
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), domainerrors.DisplayMessage(err, domainerrors.OpLogin))
	}
}

func TestSessionService_LoginWithDni_ServerErrorIsNotRewritten(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().
		LoginWithDni(ctx, service.DniLoginRequest{Dni: "12345678"}).
		Return(nil, domainerrors.NewAPIError(http.StatusBadGateway, "", "", ""))

	_, err := fx.service.LoginWithDni(ctx, "12345678")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusBadGateway, domainerrors.StatusCode(err))
}

func TestSessionService_LoginSaveFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().
		LoginWithDni(ctx, service.DniLoginRequest{Dni: "12345678"}).
		Return(&service.AuthResponse{Token: "jwt"}, nil)
	fx.store.EXPECT().
		Save(ctx, entity.Credentials{Token: "jwt", Dni: ptr("12345678")}).
		Return(errors.New("keychain locked"))

	_, err := fx.service.LoginWithDni(ctx, "12345678")

	assert.ErrorContains(t, err, "keychain locked")
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.store.EXPECT().Clear(ctx).Return()
	fx.auth.EXPECT().ClearCache().Return()

	fx.service.Logout(ctx)
}

func TestSessionService_CurrentSession(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		creds := &entity.Credentials{Token: "jwt", Username: ptr("operador")}

		fx.store.EXPECT().GetValidToken(ctx).Return("jwt", true)
		fx.store.EXPECT().GetAuthData(ctx).Return(creds)

		assert.Same(t, creds, fx.service.CurrentSession(ctx))
	})

	t.Run("expired or missing token", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()

		fx.store.EXPECT().GetValidToken(ctx).Return("", false)

		assert.Nil(t, fx.service.CurrentSession(ctx))
	})
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alerty/config"
	"alerty/internal/delivery/http/validator"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/repository"
	"alerty/internal/domain/service"
	"alerty/internal/infra/auth"
	"alerty/internal/infra/memstore"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authHandlerFixtures struct {
	e       *echo.Echo
	handler *AuthHandler
	users   repository.UserRepository
	hasher  service.PasswordHasher
	tokens  service.TokenService
}

func createTestAuthHandler(t *testing.T) *authHandlerFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	users := memstore.NewUserRepository(memstore.NewEmpty())

	return &authHandlerFixtures{
		e:       e,
		handler: NewAuthHandler(users, hasher, tokens, slog.New(slog.NewTextHandler(io.Discard, nil))),
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func (f *authHandlerFixtures) addUser(t *testing.T, username, password, dni string, active bool) *repository.StoredUser {
	t.Helper()

	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)

	user := &repository.StoredUser{
		User: entity.User{
			Username:  username,
			FullName:  "Test " + username,
			Dni:       dni,
			Role:      "OPERATOR",
			Active:    active,
			CompanyID: 4,
		},
		PasswordHash: hash,
	}
	require.NoError(t, f.users.Create(context.Background(), user))

	return user
}

func (f *authHandlerFixtures) post(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	fx := createTestAuthHandler(t)
	user := fx.addUser(t, "ana", "secret", "11111111", true)

	c, rec := fx.post(`{"username":"ana","password":"secret"}`)
	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp service.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Username)
	assert.Equal(t, "ana", *resp.Username)
	assert.Nil(t, resp.Dni)
	require.NotNil(t, resp.CompanyID)
	assert.Equal(t, int64(4), *resp.CompanyID)

	claims, err := fx.tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.addUser(t, "ana", "secret", "11111111", true)
	fx.addUser(t, "old", "secret", "22222222", false)

	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "wrong password", body: `{"username":"ana","password":"nope"}`, want: domainerrors.ErrInvalidCredentials},
		{name: "unknown user", body: `{"username":"nadie","password":"secret"}`, want: domainerrors.ErrInvalidCredentials},
		{name: "inactive user", body: `{"username":"old","password":"secret"}`, want: domainerrors.ErrForbidden},
		{name: "missing password", body: `{"username":"ana"}`, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := fx.post(tt.body)
			assert.ErrorIs(t, fx.handler.Login(c), tt.want)
		})
	}
}

func TestAuthHandler_LoginWithDni(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.addUser(t, "ana", "secret", "11111111", true)

	c, rec := fx.post(`{"dni":"11111111"}`)
	require.NoError(t, fx.handler.LoginWithDni(c))

	var resp service.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Dni)
	assert.Equal(t, "11111111", *resp.Dni)
	assert.Nil(t, resp.Username)

	c, _ = fx.post(`{"dni":"99999999"}`)
	assert.ErrorIs(t, fx.handler.LoginWithDni(c), domainerrors.ErrInvalidCredentials)
}

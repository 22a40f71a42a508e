package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alerty/config"
	"alerty/internal/delivery/hooks"
	deliveryhttp "alerty/internal/delivery/http"
	"alerty/internal/delivery/http/middleware"
	"alerty/internal/delivery/http/router"
	"alerty/internal/delivery/http/router/handler"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/infra/api"
	"alerty/internal/infra/auth"
	"alerty/internal/infra/httpclient"
	"alerty/internal/infra/memstore"
	"alerty/internal/infra/securestore"
	"alerty/internal/infra/session"
	"alerty/internal/query"
	"alerty/internal/usecase"
	"alerty/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type e2eFixtures struct {
	server  *httptest.Server
	session usecase.SessionUsecase
	hooks   *hooks.Hooks
	store   *session.Store
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.ApplyDefaults()
	cfg.Query.Retry = 0

	return cfg
}

func newBackend(t *testing.T, cfg *config.Config, logger *slog.Logger) *httptest.Server {
	t.Helper()

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	db, err := memstore.New(memstore.Params{Hasher: hasher, Logger: logger})
	require.NoError(t, err)
	users := memstore.NewUserRepository(db)

	e := deliveryhttp.NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(users, hasher, tokens, logger),
		AlertHandler:   handler.NewAlertHandler(memstore.NewAlertRepository(db), logger),
		UserHandler:    handler.NewUserHandler(users, hasher, logger),
		DeviceHandler:  handler.NewDeviceHandler(memstore.NewDeviceRepository(db), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv
}

func createTestE2E(t *testing.T) *e2eFixtures {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	srv := newBackend(t, cfg, logger)

	kv, err := securestore.OpenMemory(ctx, "test-passphrase", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	store := session.NewStore(session.Params{KV: kv, Logger: logger})
	client := httpclient.NewClient(srv.URL, 5*time.Second, logger,
		httpclient.BearerToken(store),
		httpclient.RequestID(),
	)
	apiParams := api.Params{Requester: client}

	qc := query.NewClient(logger, query.WithStaleTime(time.Minute), query.WithRetry(0))
	t.Cleanup(func() { _ = qc.Close() })

	h := hooks.New(hooks.Params{
		Query:   qc,
		Auth:    api.NewAuthService(apiParams),
		Alerts:  api.NewAlertService(apiParams),
		Users:   api.NewUserService(apiParams),
		Devices: api.NewDeviceService(apiParams),
		Config:  cfg,
		Logger:  logger,
	})

	return &e2eFixtures{
		server:  srv,
		session: impl.NewSessionService(h, store, logger),
		hooks:   h,
		store:   store,
	}
}

func TestE2E_LoginAcknowledgeAndLogout(t *testing.T) {
	ctx := context.Background()
	fx := createTestE2E(t)

	_, err := fx.session.LoginWithUsername(ctx, memstore.SeedAdminUsername, "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, fx.session.CurrentSession(ctx))

	creds, err := fx.session.LoginWithUsername(ctx, memstore.SeedAdminUsername, memstore.SeedAdminPassword)
	require.NoError(t, err)
	require.True(t, creds.HasCompany())
	assert.Equal(t, memstore.SeedCompanyID, *creds.CompanyID)
	assert.Equal(t, "ADMIN", *creds.Role)
	require.NotNil(t, fx.session.CurrentSession(ctx))

	params := service.AlertListParams{CompanyID: *creds.CompanyID}
	alerts, err := fx.hooks.Alerts(ctx, params)
	require.NoError(t, err)
	require.Len(t, alerts.Data.Content, 6)
	assert.Equal(t, 3, entity.StatsFor(alerts.Data).Pending)

	newest := alerts.Data.Content[0]
	require.False(t, newest.Acknowledged)

	acked, err := fx.hooks.AcknowledgeAlert(ctx, &newest)
	require.NoError(t, err)
	assert.True(t, acked.Acknowledged)

	again, err := fx.hooks.Alerts(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 2, entity.StatsFor(again.Data).Pending)

	fx.session.Logout(ctx)
	assert.Nil(t, fx.session.CurrentSession(ctx))

	_, err = fx.hooks.Alerts(ctx, params)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, domainerrors.StatusCode(err))
	assert.Equal(t, domainerrors.ErrSessionExpired.Message(), domainerrors.DisplayMessage(err, domainerrors.OpDefault))
}

func TestE2E_DniLoginSearchesUsers(t *testing.T) {
	ctx := context.Background()
	fx := createTestE2E(t)

	creds, err := fx.session.LoginWithDni(ctx, memstore.SeedOperatorDni)
	require.NoError(t, err)
	assert.Equal(t, memstore.SeedOperatorDni, *creds.Dni)

	users, err := fx.hooks.Users(ctx, service.UserSearchParams{CompanyID: *creds.CompanyID, Query: "turno"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), users.Data.TotalElements)

	user, err := fx.hooks.User(ctx, service.UserLookup{CompanyID: *creds.CompanyID, UserID: *creds.UserID})
	require.NoError(t, err)
	assert.Equal(t, memstore.SeedOperatorUsername, user.Data.Username)

	// Operators cannot manage users.
	_, err = fx.hooks.CreateUser(ctx, *creds.CompanyID, service.UserInput{
		Username: "nuevo", FullName: "Nuevo", Role: "OPERATOR", Password: "secret",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, domainerrors.StatusCode(err))

	err = fx.hooks.RegisterDevice(ctx, entity.DeviceRegistration{
		UserID: *creds.UserID, ExpoPushToken: "ExponentPushToken[abc]", Platform: "android", Active: true,
	})
	require.NoError(t, err)
}

func TestE2E_AdminManagesUsers(t *testing.T) {
	ctx := context.Background()
	fx := createTestE2E(t)

	creds, err := fx.session.LoginWithUsername(ctx, memstore.SeedAdminUsername, memstore.SeedAdminPassword)
	require.NoError(t, err)
	companyID := *creds.CompanyID

	input := service.UserInput{Username: "nuevo", FullName: "Nuevo Operador", Role: "operator", Active: true, Password: "secret"}
	created, err := fx.hooks.CreateUser(ctx, companyID, input)
	require.NoError(t, err)
	assert.Equal(t, "OPERATOR", created.Role)

	_, err = fx.hooks.CreateUser(ctx, companyID, input)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, domainerrors.StatusCode(err))

	require.NoError(t, fx.hooks.DeleteUser(ctx, companyID, created.ID))

	_, err = fx.hooks.User(ctx, service.UserLookup{CompanyID: companyID, UserID: created.ID})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, domainerrors.StatusCode(err))
}

func TestServer_RejectsMissingToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := newBackend(t, testConfig(), logger)

	resp, err := http.Get(srv.URL + "/api/alerts")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "MISSING_TOKEN"))

	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

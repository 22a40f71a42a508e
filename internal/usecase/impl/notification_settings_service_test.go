package impl

import (
	"context"
	"net/http"
	"testing"

	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/infra/prefs"
	mockService "alerty/internal/mocks/service"
	mockUsecase "alerty/internal/mocks/usecase"
	"alerty/internal/query"
	"alerty/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notificationSettingsFixtures holds all test dependencies for notification settings tests.
type notificationSettingsFixtures struct {
	service usecase.NotificationSettingsUsecase
	devices *mockUsecase.MockDeviceHooks
	session *mockService.MockCredentialStore
	prefs   *prefs.Store
}

func createTestNotificationSettings(t *testing.T) notificationSettingsFixtures {
	devices := mockUsecase.NewMockDeviceHooks(t)
	session := mockService.NewMockCredentialStore(t)
	store := prefs.NewStore(context.Background(), nil, testLogger())

	return notificationSettingsFixtures{
		service: NewNotificationSettingsService(devices, session, store, testLogger()),
		devices: devices,
		session: session,
		prefs:   store,
	}
}

func TestNotificationSettings_EnableRegistersDevice(t *testing.T) {
	fx := createTestNotificationSettings(t)
	ctx := context.Background()
	fx.prefs.SetNotificationsAllowed(false)

	fx.session.EXPECT().GetAuthData(ctx).Return(&entity.Credentials{
		Token:     "jwt",
		CompanyID: ptr(int64(3)),
		UserID:    ptr(int64(11)),
	})
	fx.devices.EXPECT().
		User(ctx, service.UserLookup{CompanyID: 3, UserID: 11}).
		Return(query.Result[*entity.User]{Data: &entity.User{ID: 11}}, nil)
	fx.devices.EXPECT().
		RegisterDevice(ctx, entity.DeviceRegistration{
			UserID:        11,
			ExpoPushToken: "ExponentPushToken[abc]",
			Platform:      "android",
			Active:        true,
		}).
		Return(nil)

	err := fx.service.EnableNotifications(ctx, "ExponentPushToken[abc]", "android")

	require.NoError(t, err)
	assert.True(t, fx.service.Preferences().NotificationsAllowed)
}

func TestNotificationSettings_EnableWithoutSession(t *testing.T) {
	fx := createTestNotificationSettings(t)
	ctx := context.Background()

	fx.session.EXPECT().GetAuthData(ctx).Return(&entity.Credentials{Token: "jwt"})

	err := fx.service.EnableNotifications(ctx, "tok", "ios")

	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	assert.False(t, fx.service.Preferences().NotificationsAllowed)
}

func TestNotificationSettings_EnableFailureTurnsNotificationsOff(t *testing.T) {
	fx := createTestNotificationSettings(t)
	ctx := context.Background()

	fx.session.EXPECT().GetAuthData(ctx).Return(&entity.Credentials{Token: "jwt", UserID: ptr(int64(11))})
	fx.devices.EXPECT().
		User(ctx, service.UserLookup{UserID: 11}).
		Return(query.Result[*entity.User]{Data: &entity.User{ID: 11}}, nil)
	fx.devices.EXPECT().
		RegisterDevice(ctx, entity.DeviceRegistration{UserID: 11, ExpoPushToken: "tok", Platform: "ios", Active: true}).
		Return(&query.Error{
			Message: "Internal Server Error",
			Status:  http.StatusInternalServerError,
			Err:     domainerrors.NewAPIError(http.StatusInternalServerError, "", "", ""),
		})

	err := fx.service.EnableNotifications(ctx, "tok", "ios")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, domainerrors.StatusCode(err))
	assert.False(t, fx.service.Preferences().NotificationsAllowed)
}

func TestNotificationSettings_EnableWithoutUser(t *testing.T) {
	fx := createTestNotificationSettings(t)
	ctx := context.Background()

	fx.session.EXPECT().GetAuthData(ctx).Return(&entity.Credentials{Token: "jwt", UserID: ptr(int64(11))})
	fx.devices.EXPECT().
		User(ctx, service.UserLookup{UserID: 11}).
		Return(query.Result[*entity.User]{}, nil)

	err := fx.service.EnableNotifications(ctx, "tok", "ios")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotLoaded)
}

func TestNotificationSettings_DisableTurnsSoundOff(t *testing.T) {
	fx := createTestNotificationSettings(t)

	fx.service.DisableNotifications()

	assert.Equal(t, entity.Preferences{}, fx.service.Preferences())
}

func TestNotificationSettings_SetSound(t *testing.T) {
	fx := createTestNotificationSettings(t)

	require.NoError(t, fx.service.SetSound(false))
	assert.False(t, fx.service.Preferences().SoundAllowed)

	require.NoError(t, fx.service.SetSound(true))
	assert.True(t, fx.service.Preferences().SoundAllowed)

	fx.service.DisableNotifications()
	err := fx.service.SetSound(true)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationsDisabled)
	assert.False(t, fx.service.Preferences().SoundAllowed)
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/errors"
	"alerty/internal/usecase"
)

// notificationSettingsService implements the NotificationSettingsUsecase interface.
type notificationSettingsService struct {
	devices usecase.DeviceHooks
	session service.CredentialStore
	prefs   service.PreferenceStore
	logger  *slog.Logger
}

// NewNotificationSettingsService is the constructor for notificationSettingsService.
func NewNotificationSettingsService(
	devices usecase.DeviceHooks,
	session service.CredentialStore,
	prefs service.PreferenceStore,
	logger *slog.Logger,
) usecase.NotificationSettingsUsecase {
	return &notificationSettingsService{
		devices: devices,
		session: session,
		prefs:   prefs,
		logger:  logger,
	}
}

func (srv *notificationSettingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Preferences returns the current local preferences.
func (srv *notificationSettingsService) Preferences() entity.Preferences {
	return srv.prefs.Get()
}

// EnableNotifications registers the device of the logged-in user. Any
// failure leaves notifications turned off.
func (srv *notificationSettingsService) EnableNotifications(ctx context.Context, pushToken, platform string) error {
	if err := srv.enable(ctx, pushToken, platform); err != nil {
		srv.prefs.SetNotificationsAllowed(false)
		srv.log(ctx).Warn("Failed to enable notifications", slog.Any("error", err))

		return err
	}

	srv.prefs.SetNotificationsAllowed(true)
	srv.log(ctx).Info("Notifications enabled", slog.String("platform", platform))

	return nil
}

func (srv *notificationSettingsService) enable(ctx context.Context, pushToken, platform string) error {
	creds := srv.session.GetAuthData(ctx)
	if !creds.HasUser() {
		return domainerrors.ErrNoSession
	}

	lookup := service.UserLookup{UserID: *creds.UserID}
	if creds.HasCompany() {
		lookup.CompanyID = *creds.CompanyID
	}

	// 1. Load the backend user the device is registered for
	res, err := srv.devices.User(ctx, lookup)
	if err != nil {
		return errors.Wrap(err, "failed to load user")
	}
	if res.Data == nil {
		return domainerrors.ErrUserNotLoaded
	}

	// 2. Register the device
	err = srv.devices.RegisterDevice(ctx, entity.DeviceRegistration{
		UserID:        res.Data.ID,
		ExpoPushToken: pushToken,
		Platform:      platform,
		Active:        true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	return nil
}

// DisableNotifications turns off notifications and sound.
func (srv *notificationSettingsService) DisableNotifications() {
	srv.prefs.SetNotificationsAllowed(false)
	srv.prefs.SetSoundAllowed(false)
}

// SetSound turns the alert sound on or off. Sound cannot be turned on while
// notifications are off.
func (srv *notificationSettingsService) SetSound(enabled bool) error {
	if enabled && !srv.prefs.Get().NotificationsAllowed {
		return domainerrors.ErrNotificationsDisabled
	}

	srv.prefs.SetSoundAllowed(enabled)

	return nil
}

package usecase

import (
	"context"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/service"
	"alerty/internal/query"
)

// DeviceHooks is the part of the hook layer the notification settings drive.
type DeviceHooks interface {
	User(ctx context.Context, lookup service.UserLookup) (query.Result[*entity.User], error)
	RegisterDevice(ctx context.Context, device entity.DeviceRegistration) error
}

// NotificationSettingsUsecase defines the operations behind the notification settings.
type NotificationSettingsUsecase interface {
	// Preferences returns the current local preferences.
	Preferences() entity.Preferences

	// EnableNotifications registers this device for push alerts of the logged-in user.
	EnableNotifications(ctx context.Context, pushToken, platform string) error

	// DisableNotifications turns off notifications and sound.
	DisableNotifications()

	// SetSound turns the alert sound on or off. Sound requires notifications.
	SetSound(enabled bool) error
}

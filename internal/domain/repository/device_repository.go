package repository

import (
	"context"

	"alerty/internal/domain/entity"
)

// DeviceRepository defines the operations for push device persistence.
type DeviceRepository interface {
	// Register upserts a device registration keyed by its push token.
	Register(ctx context.Context, device *entity.DeviceRegistration) error

	// FindByUser retrieves all registrations of a user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.DeviceRegistration, error)
}

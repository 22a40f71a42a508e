package service

import (
	"context"

	"alerty/internal/domain/entity"
)

// DeviceService registers push devices. Registrations are write-only.
type DeviceService interface {
	RegisterDevice(ctx context.Context, device entity.DeviceRegistration) error
}

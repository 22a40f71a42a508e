package hooks

import (
	"context"

	"alerty/internal/domain/entity"
	"alerty/internal/query"
)

// RegisterDevice registers a push device. Nothing cached depends on it.
func (h *Hooks) RegisterDevice(ctx context.Context, device entity.DeviceRegistration) error {
	_, err := query.Mutate(ctx,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.devices.RegisterDevice(ctx, device)
		},
		nil,
	)

	return err
}

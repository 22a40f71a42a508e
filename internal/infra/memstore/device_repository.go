package memstore

import (
	"context"
	"sort"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
)

// deviceRepository implements the repository.DeviceRepository interface in memory.
type deviceRepository struct {
	db *DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Register upserts a registration keyed by its push token. A token moves to
// the last user that registered it.
func (repo *deviceRepository) Register(ctx context.Context, device *entity.DeviceRegistration) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.devices[device.ExpoPushToken] = &deviceRecord{
		UserID:        device.UserID,
		ExpoPushToken: device.ExpoPushToken,
		Platform:      device.Platform,
		Active:        device.Active,
		UpdatedAt:     repo.db.now(),
	}

	return nil
}

// FindByUser retrieves all registrations of a user, most recent first.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.DeviceRegistration, error) {
	repo.db.mu.RLock()
	records := make([]*deviceRecord, 0)
	for _, r := range repo.db.devices {
		if r.UserID == userID {
			records = append(records, r)
		}
	}
	repo.db.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool { return records[i].UpdatedAt.After(records[j].UpdatedAt) })

	devices := make([]*entity.DeviceRegistration, len(records))
	for i, r := range records {
		devices[i] = toDeviceDomain(r)
	}

	return devices, nil
}

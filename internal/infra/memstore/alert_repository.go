package memstore

import (
	"context"
	"sort"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
)

// alertRepository implements the repository.AlertRepository interface in memory.
type alertRepository struct {
	db *DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// FindByID retrieves a single alert.
func (repo *alertRepository) FindByID(ctx context.Context, id int64) (*entity.Alert, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	r, ok := repo.db.alerts[id]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	return toAlertDomain(r), nil
}

// List returns a page of alerts, newest first. From and To bound the receive
// time inclusively when set.
func (repo *alertRepository) List(ctx context.Context, q repository.AlertQuery) (*entity.Page[entity.Alert], error) {
	repo.db.mu.RLock()
	records := make([]*alertRecord, 0, len(repo.db.alerts))
	for _, r := range repo.db.alerts {
		if q.CompanyID > 0 && r.CompanyID != q.CompanyID {
			continue
		}
		if !q.From.IsZero() && r.ReceivedAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && r.ReceivedAt.After(q.To) {
			continue
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].ReceivedAt.Equal(records[j].ReceivedAt) {
			return records[i].ID > records[j].ID
		}

		return records[i].ReceivedAt.After(records[j].ReceivedAt)
	})

	alerts := make([]entity.Alert, len(records))
	for i, r := range records {
		alerts[i] = *toAlertDomain(r)
	}
	repo.db.mu.RUnlock()

	return entity.NewPage(alerts, q.Page, q.Size), nil
}

// Create persists a new alert and assigns its id. A missing receive time is
// set to now.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	alert.ID = repo.db.nextAlertID
	repo.db.nextAlertID++
	if alert.ReceivedAt.IsZero() {
		alert.ReceivedAt = entity.NewTimestamp(repo.db.now())
	}
	if alert.EventTime.IsZero() {
		alert.EventTime = alert.ReceivedAt
	}
	repo.db.alerts[alert.ID] = toAlertRecord(alert)

	return nil
}

// Update replaces an existing alert. Receive time and acknowledgement are kept.
func (repo *alertRepository) Update(ctx context.Context, alert *entity.Alert) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	current, ok := repo.db.alerts[alert.ID]
	if !ok {
		return repository.ErrAlertNotFound
	}

	next := toAlertRecord(alert)
	next.ReceivedAt = current.ReceivedAt
	next.Acknowledged = current.Acknowledged
	if next.EventTime.IsZero() {
		next.EventTime = current.EventTime
	}
	repo.db.alerts[alert.ID] = next
	*alert = *toAlertDomain(next)

	return nil
}

// Delete removes an alert.
func (repo *alertRepository) Delete(ctx context.Context, id int64) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.alerts[id]; !ok {
		return repository.ErrAlertNotFound
	}
	delete(repo.db.alerts, id)

	return nil
}

// Acknowledge marks an alert as acknowledged and returns it. Acknowledging
// twice is not an error.
func (repo *alertRepository) Acknowledge(ctx context.Context, id int64) (*entity.Alert, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	r, ok := repo.db.alerts[id]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}
	r.Acknowledged = true

	return toAlertDomain(r), nil
}

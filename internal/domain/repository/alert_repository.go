package repository

import (
	"context"
	"time"

	"alerty/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertQuery narrows an alert listing. Zero values do not filter.
type AlertQuery struct {
	CompanyID int64
	From      time.Time
	To        time.Time
	Page      int
	Size      int
}

// AlertRepository defines the operations for alert persistence.
type AlertRepository interface {
	// FindByID retrieves a single alert.
	FindByID(ctx context.Context, id int64) (*entity.Alert, error)

	// List returns a page of alerts, newest first.
	List(ctx context.Context, q AlertQuery) (*entity.Page[entity.Alert], error)

	// Create persists a new alert and assigns its id.
	Create(ctx context.Context, alert *entity.Alert) error

	// Update replaces an existing alert.
	Update(ctx context.Context, alert *entity.Alert) error

	// Delete removes an alert.
	Delete(ctx context.Context, id int64) error

	// Acknowledge marks an alert as acknowledged and returns it.
	Acknowledge(ctx context.Context, id int64) (*entity.Alert, error)
}

// Package memstore is the in-memory persistence layer of the development
// backend. Every repository shares one DB guarded by a single mutex; records
// are copied in and out so callers never alias stored state.
package memstore

import (
	"log/slog"
	"sync"
	"time"

	"alerty/internal/domain/service"

	"go.uber.org/fx"
)

// DB holds every table of the development backend.
type DB struct {
	mu sync.RWMutex

	users   map[int64]*userRecord
	alerts  map[int64]*alertRecord
	devices map[string]*deviceRecord

	nextUserID  int64
	nextAlertID int64

	now func() time.Time
}

// Params holds dependencies for the in-memory database, injected by Fx
type Params struct {
	fx.In

	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// New creates the database and loads the seed data.
func New(params Params) (*DB, error) {
	db := NewEmpty()
	if err := db.seed(params.Hasher); err != nil {
		return nil, err
	}

	params.Logger.Info("Seeded in-memory database",
		slog.Int("users", len(db.users)),
		slog.Int("alerts", len(db.alerts)),
	)

	return db, nil
}

// NewEmpty creates a database without seed data.
func NewEmpty() *DB {
	return &DB{
		users:       make(map[int64]*userRecord),
		alerts:      make(map[int64]*alertRecord),
		devices:     make(map[string]*deviceRecord),
		nextUserID:  1,
		nextAlertID: 1,
		now:         time.Now,
	}
}

// Module provides the in-memory persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewUserRepository,
		NewAlertRepository,
		NewDeviceRepository,
	),
)

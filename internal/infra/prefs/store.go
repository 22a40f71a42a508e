// Package prefs holds the local notification preferences. Reads are served
// from memory; writes are applied in memory at once and persisted to the
// key-value store in the background. A failed write is logged and the
// in-memory value is kept.
package prefs

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"go.uber.org/fx"
)

// Storage keys of the preferences.
const (
	KeyNotificationsAllowed = "alerty_notifications_allowed"
	KeySoundAllowed         = "alerty_sound_allowed"
)

// Store is the observable preference store.
type Store struct {
	mu        sync.Mutex
	prefs     entity.Preferences
	hydrated  bool
	observers map[int]func(entity.Preferences)
	nextID    int

	persistMu sync.Mutex
	pending   sync.WaitGroup

	kv     repository.KeyValueStore
	ctx    context.Context
	logger *slog.Logger
}

var _ service.PreferenceStore = (*Store)(nil)

// Params holds dependencies for the preference store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	KV     repository.KeyValueStore
	Logger *slog.Logger
}

// New creates the store, hydrates it on start and waits for pending writes on stop.
func New(params Params) *Store {
	s := NewStore(params.Ctx, params.KV, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Hydrate(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Flush()

			return nil
		},
	})

	return s
}

// NewStore creates a store with the default preferences. kv may be nil, in
// which case nothing is persisted.
func NewStore(ctx context.Context, kv repository.KeyValueStore, logger *slog.Logger) *Store {
	return &Store{
		prefs:     entity.DefaultPreferences(),
		observers: make(map[int]func(entity.Preferences)),
		kv:        kv,
		ctx:       context.WithoutCancel(ctx),
		logger:    logger,
	}
}

// Hydrate loads the persisted values once. Missing or unreadable values keep
// their defaults. Later calls do nothing.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.hydrated || s.kv == nil {
		s.hydrated = true
		s.mu.Unlock()

		return
	}
	s.hydrated = true
	s.mu.Unlock()

	notifications, okN := s.read(ctx, KeyNotificationsAllowed)
	sound, okS := s.read(ctx, KeySoundAllowed)
	if !okN && !okS {
		return
	}

	s.mu.Lock()
	if okN {
		s.prefs.NotificationsAllowed = notifications
	}
	if okS {
		s.prefs.SoundAllowed = sound
	}
	snapshot, observers := s.prefs, s.snapshotObservers()
	s.mu.Unlock()

	s.notify(observers, snapshot)
}

// Get returns the current preferences.
func (s *Store) Get() entity.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prefs
}

// SetNotificationsAllowed updates the notifications flag.
func (s *Store) SetNotificationsAllowed(allowed bool) {
	s.update(func(p *entity.Preferences) { p.NotificationsAllowed = allowed })
}

// SetSoundAllowed updates the sound flag.
func (s *Store) SetSoundAllowed(allowed bool) {
	s.update(func(p *entity.Preferences) { p.SoundAllowed = allowed })
}

// Subscribe registers fn for every change until the returned function is called.
func (s *Store) Subscribe(fn func(entity.Preferences)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.observers, id)
	}
}

// Flush waits until every pending write has been persisted or has failed.
func (s *Store) Flush() {
	s.pending.Wait()
}

func (s *Store) update(apply func(p *entity.Preferences)) {
	s.mu.Lock()
	before := s.prefs
	apply(&s.prefs)
	snapshot, observers := s.prefs, s.snapshotObservers()
	s.mu.Unlock()

	if snapshot == before {
		return
	}

	s.notify(observers, snapshot)
	s.persist()
}

// persist writes the current preferences in the background. Writes are
// serialized and each one stores the latest values, so the last write wins.
func (s *Store) persist() {
	if s.kv == nil {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		s.persistMu.Lock()
		defer s.persistMu.Unlock()

		current := s.Get()
		if err := s.write(current); err != nil {
			s.logger.Warn("Failed to persist preferences", slog.Any("error", err))
		}
	}()
}

func (s *Store) write(p entity.Preferences) error {
	if err := s.kv.Set(s.ctx, KeyNotificationsAllowed, strconv.FormatBool(p.NotificationsAllowed)); err != nil {
		return errors.Wrap(err, "save notifications preference")
	}
	if err := s.kv.Set(s.ctx, KeySoundAllowed, strconv.FormatBool(p.SoundAllowed)); err != nil {
		return errors.Wrap(err, "save sound preference")
	}

	return nil
}

func (s *Store) read(ctx context.Context, key string) (bool, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Warn("Failed to read preference",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return false, false
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn("Stored preference is not a boolean", slog.String("key", key))

		return false, false
	}

	return v, true
}

func (s *Store) snapshotObservers() []func(entity.Preferences) {
	out := make([]func(entity.Preferences), 0, len(s.observers))
	for _, fn := range s.observers {
		out = append(out, fn)
	}

	return out
}

func (s *Store) notify(observers []func(entity.Preferences), p entity.Preferences) {
	for _, fn := range observers {
		fn(p)
	}
}

// Module provides the preference store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(s *Store) service.PreferenceStore { return s },
	),
)

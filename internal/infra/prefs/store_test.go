package prefs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
	"alerty/internal/infra/securestore"
	mockRepo "alerty/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryKV(t *testing.T) *securestore.Store {
	t.Helper()

	kv, err := securestore.OpenMemory(context.Background(), "prefs-test", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return kv
}

func TestStore_DefaultsToEverythingAllowed(t *testing.T) {
	s := NewStore(context.Background(), nil, testLogger())

	assert.Equal(t, entity.Preferences{NotificationsAllowed: true, SoundAllowed: true}, s.Get())
}

func TestStore_PersistsAndHydrates(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV(t)

	s := NewStore(ctx, kv, testLogger())
	s.SetSoundAllowed(false)
	s.SetNotificationsAllowed(false)
	s.Flush()

	raw, err := kv.Get(ctx, KeySoundAllowed)
	require.NoError(t, err)
	assert.Equal(t, "false", raw)

	reloaded := NewStore(ctx, kv, testLogger())
	reloaded.Hydrate(ctx)

	assert.Equal(t, entity.Preferences{}, reloaded.Get())
}

func TestStore_HydrateRunsOnce(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV(t)
	require.NoError(t, kv.Set(ctx, KeyNotificationsAllowed, "false"))

	s := NewStore(ctx, kv, testLogger())
	s.Hydrate(ctx)
	s.SetNotificationsAllowed(true)
	s.Flush()
	require.NoError(t, kv.Set(ctx, KeyNotificationsAllowed, "false"))

	s.Hydrate(ctx)

	assert.True(t, s.Get().NotificationsAllowed)
}

func TestStore_HydrateIgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	kv := mockRepo.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, KeyNotificationsAllowed).Return("maybe", nil).Once()
	kv.EXPECT().Get(mock.Anything, KeySoundAllowed).Return("", repository.ErrKeyNotFound).Once()

	s := NewStore(ctx, kv, testLogger())
	s.Hydrate(ctx)

	assert.Equal(t, entity.DefaultPreferences(), s.Get())
}

func TestStore_PersistFailureKeepsMemory(t *testing.T) {
	kv := mockRepo.NewMockKeyValueStore(t)
	kv.EXPECT().Set(mock.Anything, KeyNotificationsAllowed, "false").Return(errors.New("disk full")).Once()

	s := NewStore(context.Background(), kv, testLogger())
	s.SetNotificationsAllowed(false)
	s.Flush()

	assert.False(t, s.Get().NotificationsAllowed)
	assert.True(t, s.Get().SoundAllowed)
}

func TestStore_SubscribeReceivesChanges(t *testing.T) {
	s := NewStore(context.Background(), nil, testLogger())

	var seen []entity.Preferences
	unsubscribe := s.Subscribe(func(p entity.Preferences) {
		seen = append(seen, p)
	})

	s.SetSoundAllowed(false)
	s.SetSoundAllowed(false)
	unsubscribe()
	s.SetNotificationsAllowed(false)

	require.Len(t, seen, 1)
	assert.Equal(t, entity.Preferences{NotificationsAllowed: true, SoundAllowed: false}, seen[0])
}

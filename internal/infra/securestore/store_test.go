package securestore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"alerty/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenMemory(context.Background(), "test-passphrase", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "alerty_token", "abc.def.ghi"))

	got, err := store.Get(ctx, "alerty_token")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	require.NoError(t, store.Delete(ctx, "alerty_token"))

	_, err = store.Get(ctx, "alerty_token")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestStore_DeleteMissingKey(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "alerty_username"))
}

func TestStore_EmptyPassphrase(t *testing.T) {
	_, err := OpenMemory(context.Background(), "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestOpen_RejectsCorruptSalt(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	require.NoError(t, bucket.WriteAll(ctx, saltKey, []byte("short"), nil))

	_, err := Open(ctx, bucket, "test-passphrase", logger)
	assert.ErrorIs(t, err, ErrCorruptSalt)

	salt, err := bucket.ReadAll(ctx, saltKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), salt)
}

func TestStore_ValuesAreSealed(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bucket := memblob.OpenBucket(nil)

	store, err := Open(ctx, bucket, "first", logger)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "alerty_dni", "12345678"))

	raw, err := bucket.ReadAll(ctx, "alerty_dni")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "12345678")

	// Reopening with the same passphrase reuses the stored salt.
	again, err := Open(ctx, bucket, "first", logger)
	require.NoError(t, err)
	got, err := again.Get(ctx, "alerty_dni")
	require.NoError(t, err)
	assert.Equal(t, "12345678", got)

	wrong, err := Open(ctx, bucket, "second", logger)
	require.NoError(t, err)
	_, err = wrong.Get(ctx, "alerty_dni")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestOpenFile_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := OpenFile(ctx, dir, "pass", logger)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "alerty_company_id", "3"))
	require.NoError(t, store.Close())

	reopened, err := OpenFile(ctx, dir, "pass", logger)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "alerty_company_id")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

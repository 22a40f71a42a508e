// Package securestore implements repository.KeyValueStore on a gocloud.dev
// blob bucket. Every value is sealed with a locally derived secretbox key, so
// the bucket only ever holds ciphertext.
package securestore

import (
	"context"
	"crypto/rand"
	"log/slog"
	"sync"

	"alerty/internal/domain/repository"
	"alerty/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"
	"golang.org/x/crypto/argon2"
)

const (
	saltKey  = "_salt"
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// Store is a sealed key-value store. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	bucket *blob.Bucket
	keeper *secrets.Keeper
	logger *slog.Logger
}

var _ repository.KeyValueStore = (*Store)(nil)

// Open builds a Store on an already opened bucket. The salt is read from the
// bucket, or generated and written on first use.
func Open(ctx context.Context, bucket *blob.Bucket, passphrase string, logger *slog.Logger) (*Store, error) {
	if passphrase == "" {
		return nil, errors.New("secure store passphrase must be provided")
	}

	salt, err := loadSalt(ctx, bucket)
	if err != nil {
		return nil, err
	}

	var key [32]byte
	copy(key[:], argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, uint32(len(key))))

	return &Store{
		bucket: bucket,
		keeper: localsecrets.NewKeeper(key),
		logger: logger,
	}, nil
}

// OpenFile opens a Store persisted under dir, creating the directory if needed.
func OpenFile(ctx context.Context, dir, passphrase string, logger *slog.Logger) (*Store, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", dir)
	}

	store, err := Open(ctx, bucket, passphrase, logger)
	if err != nil {
		_ = bucket.Close()

		return nil, err
	}

	return store, nil
}

// OpenMemory opens a Store that lives only as long as the process.
func OpenMemory(ctx context.Context, passphrase string, logger *slog.Logger) (*Store, error) {
	return Open(ctx, memblob.OpenBucket(nil), passphrase, logger)
}

// ErrCorruptSalt is returned by Open when the stored salt has the wrong size.
// The salt is never replaced once written.
var ErrCorruptSalt = errors.New("secure store salt is corrupt")

func loadSalt(ctx context.Context, bucket *blob.Bucket) ([]byte, error) {
	salt, err := bucket.ReadAll(ctx, saltKey)
	if err == nil {
		if len(salt) != saltSize {
			return nil, errors.Wrapf(ErrCorruptSalt, "salt has %d bytes", len(salt))
		}

		return salt, nil
	}
	if gcerrors.Code(err) != gcerrors.NotFound {
		return nil, errors.Wrap(err, "read salt")
	}

	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "generate salt")
	}
	if err := bucket.WriteAll(ctx, saltKey, salt, nil); err != nil {
		return nil, errors.Wrap(err, "write salt")
	}

	return salt, nil
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "read %s", key)
	}

	plain, err := s.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", errors.Wrapf(err, "decrypt %s", key)
	}

	return string(plain), nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := s.keeper.Encrypt(ctx, []byte(value))
	if err != nil {
		return errors.Wrapf(err, "encrypt %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key, sealed, nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// Close releases the keeper and the bucket.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.WithStack(errors.Join(s.keeper.Close(), s.bucket.Close()))
}

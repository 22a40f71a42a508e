// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by a KeyValueStore when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the secure on-device storage the session and preference
// stores persist into. Every key is an independent record.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

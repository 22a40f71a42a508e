package service

import (
	"context"

	"alerty/internal/domain/entity"
)

// CredentialStore keeps the session record of the logged-in user.
type CredentialStore interface {
	TokenSource

	// Save persists every present field of creds; absent fields are left untouched.
	Save(ctx context.Context, creds entity.Credentials) error

	// GetAuthData returns the stored record, or nil when no token is stored.
	GetAuthData(ctx context.Context) *entity.Credentials

	// Clear removes the whole record.
	Clear(ctx context.Context)
}

// PreferenceStore holds the local notification preferences.
type PreferenceStore interface {
	Get() entity.Preferences
	SetNotificationsAllowed(allowed bool)
	SetSoundAllowed(allowed bool)
}

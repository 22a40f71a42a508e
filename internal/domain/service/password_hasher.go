// Package service defines the contracts the client and the development
// backend are built against: remote resource services, session storage and
// the backend's credential primitives.
package service

// PasswordHasher hashes the passwords of backend accounts. Only the
// development backend stores passwords; the client never sees a hash.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Empty passwords are rejected.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}

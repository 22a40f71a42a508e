// Package session keeps the credential record of the logged-in user in the
// secure key-value store and hands out bearer tokens for outgoing requests.
//
// Token expiry is checked lazily. A token whose payload cannot be decoded is
// treated as not expired: the backend stays the final authority and answers
// 401, which the caller surfaces as an expired session.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// Storage keys of the credential record.
const (
	KeyToken     = "alerty_token"
	KeyUsername  = "alerty_username"
	KeyDni       = "alerty_dni"
	KeyRole      = "alerty_role"
	KeyCompanyID = "alerty_company_id"
	KeyUserID    = "alerty_user_id"
)

var allKeys = []string{KeyToken, KeyUsername, KeyDni, KeyRole, KeyCompanyID, KeyUserID}

// Store is the secure credential store.
type Store struct {
	kv     repository.KeyValueStore
	logger *slog.Logger
	now    func() time.Time
}

var _ service.CredentialStore = (*Store)(nil)

// Params holds dependencies for the credential store, injected by Fx
type Params struct {
	fx.In

	KV     repository.KeyValueStore
	Logger *slog.Logger
}

// NewStore creates the credential store.
func NewStore(params Params) *Store {
	return &Store{
		kv:     params.KV,
		logger: params.Logger,
		now:    time.Now,
	}
}

// Save persists every present field under its own key. Absent fields keep
// whatever was stored before.
func (s *Store) Save(ctx context.Context, creds entity.Credentials) error {
	values := make([][2]string, 0, len(allKeys))
	if creds.Token != "" {
		values = append(values, [2]string{KeyToken, creds.Token})
	}
	if creds.Username != nil {
		values = append(values, [2]string{KeyUsername, *creds.Username})
	}
	if creds.Dni != nil {
		values = append(values, [2]string{KeyDni, *creds.Dni})
	}
	if creds.Role != nil {
		values = append(values, [2]string{KeyRole, *creds.Role})
	}
	if creds.CompanyID != nil {
		values = append(values, [2]string{KeyCompanyID, strconv.FormatInt(*creds.CompanyID, 10)})
	}
	if creds.UserID != nil {
		values = append(values, [2]string{KeyUserID, strconv.FormatInt(*creds.UserID, 10)})
	}

	for _, kv := range values {
		if err := s.kv.Set(ctx, kv[0], kv[1]); err != nil {
			return errors.Wrapf(err, "save %s", kv[0])
		}
	}

	return nil
}

// GetToken returns the stored token without checking its expiry.
func (s *Store) GetToken(ctx context.Context) (string, bool) {
	return s.readString(ctx, KeyToken)
}

// GetUsername returns the stored username.
func (s *Store) GetUsername(ctx context.Context) (string, bool) {
	return s.readString(ctx, KeyUsername)
}

// GetCompanyID returns the company the session is scoped to.
func (s *Store) GetCompanyID(ctx context.Context) (int64, bool) {
	return s.readInt(ctx, KeyCompanyID)
}

// GetUserID returns the backend id of the logged-in user.
func (s *Store) GetUserID(ctx context.Context) (int64, bool) {
	return s.readInt(ctx, KeyUserID)
}

// GetAuthData returns the full record, or nil when no token is stored.
func (s *Store) GetAuthData(ctx context.Context) *entity.Credentials {
	token, ok := s.GetToken(ctx)
	if !ok {
		return nil
	}

	creds := &entity.Credentials{Token: token}
	if v, ok := s.readString(ctx, KeyUsername); ok {
		creds.Username = &v
	}
	if v, ok := s.readString(ctx, KeyDni); ok {
		creds.Dni = &v
	}
	if v, ok := s.readString(ctx, KeyRole); ok {
		creds.Role = &v
	}
	if v, ok := s.readInt(ctx, KeyCompanyID); ok {
		creds.CompanyID = &v
	}
	if v, ok := s.readInt(ctx, KeyUserID); ok {
		creds.UserID = &v
	}

	return creds
}

// Clear deletes every key of the record. Failures are logged and skipped.
func (s *Store) Clear(ctx context.Context) {
	for _, key := range allKeys {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete session key",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
}

// IsTokenExpired reports whether token carries an exp claim in the past.
// Tokens that cannot be decoded, or carry no exp claim, are not expired.
func (s *Store) IsTokenExpired(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return false
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return s.now().After(exp.Time)
}

// GetValidToken returns the stored token unless it is missing or expired.
// An expired token clears the whole record before returning.
func (s *Store) GetValidToken(ctx context.Context) (string, bool) {
	token, ok := s.GetToken(ctx)
	if !ok {
		return "", false
	}

	if s.IsTokenExpired(token) {
		s.logger.Info("Session token expired, clearing credentials")
		s.Clear(ctx)

		return "", false
	}

	return token, true
}

func (s *Store) readString(ctx context.Context, key string) (string, bool) {
	v, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Warn("Failed to read session key",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return "", false
	}

	return v, true
}

func (s *Store) readInt(ctx context.Context, key string) (int64, bool) {
	raw, ok := s.readString(ctx, key)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		s.logger.Warn("Stored session value is not a number",
			slog.String("key", key),
		)

		return 0, false
	}

	return n, true
}

// Module provides the credential store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		func(s *Store) service.CredentialStore { return s },
		func(s *Store) service.TokenSource { return s },
	),
)

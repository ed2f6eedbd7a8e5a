package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/cryptox"
)

// DefaultSessionTTL matches the 7-day reference behaviour.
const DefaultSessionTTL = 7 * 24 * time.Hour

// ErrSessionInvalid is returned for every invalid-token path: missing,
// expired, malformed. Callers must not be able to tell those apart.
var ErrSessionInvalid = errors.New("session invalid")

// SessionService issues and resolves opaque bearer sessions backed by the KV
// store's expiring keys.
type SessionService struct {
	Store store.Store
	TTL   time.Duration

	// Now is injectable for expiry tests; defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

// Issue creates a fresh unguessable token bound to the given identity.
// Sessions are immutable once issued.
func (s *SessionService) Issue(ctx context.Context, userID, email string) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	sess := domain.Session{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl()),
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	if err := s.Store.PutTTL(ctx, store.PrefixSession+token, raw, sess.ExpiresAt); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a bearer token back to its session. The store already hides
// expired rows; the explicit expiry check on top keeps the semantics under an
// injected clock.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, ErrSessionInvalid
	}

	raw, err := s.Store.Get(ctx, store.PrefixSession+token)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrSessionInvalid
	}
	if err != nil {
		return domain.Session{}, err
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return domain.Session{}, ErrSessionInvalid
	}
	if sess.Expired(s.now()) {
		return domain.Session{}, ErrSessionInvalid
	}
	return sess, nil
}

// Revoke invalidates a single token server-side. Revoking an unknown token
// is not an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Delete(ctx, store.PrefixSession+token)
}

// RevokeUser invalidates every live session bound to userID. Called on
// password change so sessions issued under the old credential die with it.
func (s *SessionService) RevokeUser(ctx context.Context, userID string) error {
	entries, err := s.Store.Scan(ctx, store.PrefixSession)
	if err != nil {
		return err
	}

	for _, e := range entries {
		var sess domain.Session
		if err := json.Unmarshal(e.Value, &sess); err != nil {
			continue
		}
		if sess.UserID != userID {
			continue
		}
		if err := s.Store.Delete(ctx, e.Key); err != nil {
			return err
		}
	}
	return nil
}

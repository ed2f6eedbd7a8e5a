package domain

import "time"

// Session is an ephemeral authorization grant bound to an opaque bearer
// token. Sessions are never mutated: they are issued once and live until TTL
// expiry or explicit revocation.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Key namespace. The store is a single flat KV space shared by every
// component; it is the only source of truth between requests.
//
//	system:salt      deployment-wide credential salt
//	user:<email>     full user record (normalized email key)
//	users:list       ordered user summaries
//	session:<token>  session record, expiring
//	config:server    meeting-server SecretConfig
//	config:email     outbound-mail SecretConfig
//	meetings:list    meetings
//	invites:list     invites
const (
	KeySalt         = "system:salt"
	KeyUsersList    = "users:list"
	KeyMeetingsList = "meetings:list"
	KeyInvitesList  = "invites:list"
	PrefixUser      = "user:"
	PrefixSession   = "session:"
	PrefixConfig    = "config:"
)

// Entry is one key/value pair returned by Scan.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. Read-modify-write sequences over it are NOT atomic across
// concurrent writers; last writer wins on the list keys.
type Store interface {
	// Get returns the value for key. Expired or missing keys both yield
	// ErrNotFound; callers cannot tell the two apart.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put upserts a non-expiring value.
	Put(ctx context.Context, key string, value []byte) error

	// PutTTL upserts a value that becomes invisible at expiresAt.
	PutTTL(ctx context.Context, key string, value []byte, expiresAt time.Time) error

	// PutIfAbsent writes value only when key does not exist yet and reports
	// whether this caller won. Used for one-shot initialization (salt).
	PutIfAbsent(ctx context.Context, key string, value []byte) (bool, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Scan returns all live entries whose key starts with prefix.
	Scan(ctx context.Context, prefix string) ([]Entry, error)

	// DeleteExpired removes rows past their expiry. Housekeeping only; Get
	// already hides them.
	DeleteExpired(ctx context.Context) (int64, error)

	ApplyMigrations() error

	// Ping verifies the backing database is still reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

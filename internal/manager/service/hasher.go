package service

import (
	"context"
	"errors"
	"sync"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/cryptox"
)

// Hasher turns plaintext passwords into storable digests under the
// deployment-wide salt. The salt lives in the durable store so that a
// restart (or a second instance sharing the namespace) keeps verifying
// digests written before it.
//
// First use initializes the salt through a conditional put: every racer
// attempts the write, then re-reads, so all of them converge on the single
// winning value. Once read, the salt is immutable and cached.
type Hasher struct {
	Store store.Store

	mu   sync.Mutex
	salt string
}

// Salt returns the deployment salt, initializing it durably on first use.
func (h *Hasher) Salt(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.salt != "" {
		return h.salt, nil
	}

	raw, err := h.Store.Get(ctx, store.KeySalt)
	if err == nil {
		h.salt = string(raw)
		return h.salt, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	fresh, err := cryptox.GenerateSalt()
	if err != nil {
		return "", err
	}
	if _, err := h.Store.PutIfAbsent(ctx, store.KeySalt, []byte(fresh)); err != nil {
		return "", err
	}

	// Re-read regardless of who won so concurrent initializers agree.
	raw, err = h.Store.Get(ctx, store.KeySalt)
	if err != nil {
		return "", err
	}
	h.salt = string(raw)
	return h.salt, nil
}

// Digest hashes password under the deployment salt.
func (h *Hasher) Digest(ctx context.Context, password string) (string, error) {
	salt, err := h.Salt(ctx)
	if err != nil {
		return "", err
	}
	return cryptox.Digest(password, salt), nil
}

// Verify reports whether password matches the stored digest.
func (h *Hasher) Verify(ctx context.Context, password, storedDigest string) (bool, error) {
	salt, err := h.Salt(ctx)
	if err != nil {
		return false, err
	}
	return cryptox.VerifyDigest(password, salt, storedDigest), nil
}

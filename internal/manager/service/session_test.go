package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionIssueResolve(t *testing.T) {
	ctx := context.Background()
	svc := &SessionService{Store: newTestStore(t)}

	token, err := svc.Issue(ctx, "user-1", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", sess.UserID)
	require.Equal(t, "a@b.com", sess.Email)
	require.Equal(t, DefaultSessionTTL, sess.ExpiresAt.Sub(sess.IssuedAt))

	// Tokens are unique per issue.
	other, err := svc.Issue(ctx, "user-1", "a@b.com")
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}

func TestSessionResolveRejects(t *testing.T) {
	ctx := context.Background()
	svc := &SessionService{Store: newTestStore(t)}

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "")
		require.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "nope")
		require.ErrorIs(t, err, ErrSessionInvalid)
	})
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()

	now := time.Now()
	svc := &SessionService{
		Store: newTestStore(t),
		TTL:   time.Hour,
		Now:   func() time.Time { return now },
	}

	token, err := svc.Issue(ctx, "user-1", "a@b.com")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, token)
	require.NoError(t, err)

	// One second shy of the deadline is still valid.
	now = now.Add(time.Hour - time.Second)
	_, err = svc.Resolve(ctx, token)
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionRevoke(t *testing.T) {
	ctx := context.Background()
	svc := &SessionService{Store: newTestStore(t)}

	token, err := svc.Issue(ctx, "user-1", "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, token))

	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrSessionInvalid)

	// Revoking again, or revoking garbage, is a no-op.
	require.NoError(t, svc.Revoke(ctx, token))
	require.NoError(t, svc.Revoke(ctx, ""))
}

func TestSessionRevokeUser(t *testing.T) {
	ctx := context.Background()
	svc := &SessionService{Store: newTestStore(t)}

	tok1, err := svc.Issue(ctx, "user-1", "a@b.com")
	require.NoError(t, err)
	tok2, err := svc.Issue(ctx, "user-1", "a@b.com")
	require.NoError(t, err)
	tokOther, err := svc.Issue(ctx, "user-2", "c@d.com")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeUser(ctx, "user-1"))

	_, err = svc.Resolve(ctx, tok1)
	require.ErrorIs(t, err, ErrSessionInvalid)
	_, err = svc.Resolve(ctx, tok2)
	require.ErrorIs(t, err, ErrSessionInvalid)

	// Unrelated sessions survive.
	_, err = svc.Resolve(ctx, tokOther)
	require.NoError(t, err)
}

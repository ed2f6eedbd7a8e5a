package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Put(ctx, "user:a@b.com", []byte(`{"id":"1"}`)))

	got, err := s.Get(ctx, "user:a@b.com")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"1"}`), got)

	// Upsert replaces.
	require.NoError(t, s.Put(ctx, "user:a@b.com", []byte(`{"id":"2"}`)))
	got, err = s.Get(ctx, "user:a@b.com")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"2"}`), got)
}

func TestPutTTL(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("future expiry is visible", func(t *testing.T) {
		require.NoError(t, s.PutTTL(ctx, "session:tok1", []byte("v"), time.Now().Add(time.Hour)))
		_, err := s.Get(ctx, "session:tok1")
		require.NoError(t, err)
	})

	t.Run("past expiry reads as not found", func(t *testing.T) {
		require.NoError(t, s.PutTTL(ctx, "session:tok2", []byte("v"), time.Now().Add(-time.Second)))
		_, err := s.Get(ctx, "session:tok2")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expired rows excluded from scans", func(t *testing.T) {
		entries, err := s.Scan(ctx, "session:")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "session:tok1", entries[0].Key)
	})
}

func TestPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	won, err := s.PutIfAbsent(ctx, "system:salt", []byte("first"))
	require.NoError(t, err)
	require.True(t, won)

	won, err = s.PutIfAbsent(ctx, "system:salt", []byte("second"))
	require.NoError(t, err)
	require.False(t, won)

	got, err := s.Get(ctx, "system:salt")
	require.NoError(t, err)
	require.Equal(t, []byte("first"), got)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Put(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting a missing key is fine.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestScanPrefixEscaping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// '_' is a LIKE wildcard; a raw prefix match would leak "userXfoo".
	require.NoError(t, s.Put(ctx, "user_a", []byte("1")))
	require.NoError(t, s.Put(ctx, "userXa", []byte("2")))

	entries, err := s.Scan(ctx, "user_")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "user_a", entries[0].Key)
}

func TestDeleteExpired(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.PutTTL(ctx, "session:old", []byte("v"), time.Now().Add(-time.Minute)))
	require.NoError(t, s.PutTTL(ctx, "session:new", []byte("v"), time.Now().Add(time.Minute)))
	require.NoError(t, s.Put(ctx, "user:kept", []byte("v")))

	n, err := s.DeleteExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.Get(ctx, "session:new")
	require.NoError(t, err)
	_, err = s.Get(ctx, "user:kept")
	require.NoError(t, err)
}

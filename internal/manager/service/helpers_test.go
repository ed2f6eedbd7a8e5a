package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	t.Run("deterministic for same inputs", func(t *testing.T) {
		a := Digest("secret1", "salt-a")
		b := Digest("secret1", "salt-a")
		require.Equal(t, a, b)
	})

	t.Run("fixed-length hex output", func(t *testing.T) {
		d := Digest("secret1", "salt-a")
		require.Len(t, d, digestKeyLength*2)
		require.Regexp(t, "^[0-9a-f]+$", d)
	})

	t.Run("different password changes digest", func(t *testing.T) {
		require.NotEqual(t, Digest("secret1", "salt-a"), Digest("secret2", "salt-a"))
	})

	t.Run("different salt changes digest", func(t *testing.T) {
		require.NotEqual(t, Digest("secret1", "salt-a"), Digest("secret1", "salt-b"))
	})
}

func TestVerifyDigest(t *testing.T) {
	t.Parallel()

	stored := Digest("hunter22", "pepper")

	require.True(t, VerifyDigest("hunter22", "pepper", stored))
	require.False(t, VerifyDigest("hunter23", "pepper", stored))
	require.False(t, VerifyDigest("hunter22", "other", stored))
	require.False(t, VerifyDigest("hunter22", "pepper", ""))
}

func TestGenerateSalt(t *testing.T) {
	t.Parallel()

	a, err := GenerateSalt()
	require.NoError(t, err)
	require.NotEmpty(t, a)

	b, err := GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

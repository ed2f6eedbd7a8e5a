package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	t.Parallel()

	body := []byte(`{"room_id":"demo"}`)

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Sign(body, "secret"), Sign(body, "secret"))
	})

	t.Run("hex encoded sha256 length", func(t *testing.T) {
		require.Len(t, Sign(body, "secret"), 64)
	})

	t.Run("one byte of body changes signature", func(t *testing.T) {
		flipped := append([]byte(nil), body...)
		flipped[0] ^= 0x01
		require.NotEqual(t, Sign(body, "secret"), Sign(flipped, "secret"))
	})

	t.Run("one byte of secret changes signature", func(t *testing.T) {
		require.NotEqual(t, Sign(body, "secret"), Sign(body, "secreU"))
	})
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	body := []byte(`{"room_id":"demo"}`)
	sig := Sign(body, "secret")

	require.True(t, VerifySignature(body, "secret", sig))
	require.False(t, VerifySignature(body, "other", sig))
	require.False(t, VerifySignature([]byte("tampered"), "secret", sig))
	require.False(t, VerifySignature(body, "secret", ""))
}

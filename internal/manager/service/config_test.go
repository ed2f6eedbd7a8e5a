package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
)

func TestConfigGetMasksSecrets(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
		domain.FieldURL:       "https://pnm.example.com",
		domain.FieldAPIKey:    "plugnmeet",
		domain.FieldAPISecret: "sk_live_abcdef123456",
	}))

	cfg, err := svc.Get(ctx, domain.ConfigServer)
	require.NoError(t, err)

	// Non-secret fields pass through untouched, the secret shows only its
	// last four characters.
	require.Equal(t, "https://pnm.example.com", cfg[domain.FieldURL])
	require.Equal(t, "plugnmeet", cfg[domain.FieldAPIKey])
	require.Equal(t, maskToken+"3456", cfg[domain.FieldAPISecret])
}

func TestConfigMaskShortSecret(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
		domain.FieldURL:       "https://pnm.example.com",
		domain.FieldAPIKey:    "k",
		domain.FieldAPISecret: "1234",
	}))

	cfg, err := svc.Get(ctx, domain.ConfigServer)
	require.NoError(t, err)
	// Four characters or fewer would round-trip through the suffix, so the
	// mask hides them entirely.
	require.Equal(t, maskToken, cfg[domain.FieldAPISecret])
}

func TestConfigGetMissing(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	_, err := svc.Get(ctx, domain.ConfigServer)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestConfigPutMergesMaskedSecrets(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
		domain.FieldURL:       "https://pnm.example.com",
		domain.FieldAPIKey:    "plugnmeet",
		domain.FieldAPISecret: "sk_live_abcdef123456",
	}))

	// Read-modify-write with the masked view must not clobber the secret.
	masked, err := svc.Get(ctx, domain.ConfigServer)
	require.NoError(t, err)
	masked[domain.FieldURL] = "https://other.example.com"
	require.NoError(t, svc.Put(ctx, domain.ConfigServer, masked))

	url, _, secret, err := svc.ServerCredentials(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://other.example.com", url)
	require.Equal(t, "sk_live_abcdef123456", secret)
}

func TestConfigPutReplacesRealSecrets(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
		domain.FieldURL:       "https://pnm.example.com",
		domain.FieldAPIKey:    "plugnmeet",
		domain.FieldAPISecret: "old-secret",
	}))
	require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
		domain.FieldURL:       "https://pnm.example.com",
		domain.FieldAPIKey:    "plugnmeet",
		domain.FieldAPISecret: "new-secret",
	}))

	_, _, secret, err := svc.ServerCredentials(ctx)
	require.NoError(t, err)
	require.Equal(t, "new-secret", secret)
}

func TestConfigPutMaskedValueOnFreshField(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	// No prior value exists: a mask-shaped submission is stored literally.
	require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
		domain.FieldURL:       "https://pnm.example.com",
		domain.FieldAPIKey:    "plugnmeet",
		domain.FieldAPISecret: maskToken + "3456",
	}))

	_, _, secret, err := svc.ServerCredentials(ctx)
	require.NoError(t, err)
	require.Equal(t, maskToken+"3456", secret)
}

func TestServerCredentials(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	t.Run("never configured", func(t *testing.T) {
		_, _, _, err := svc.ServerCredentials(ctx)
		require.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("blank field", func(t *testing.T) {
		require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
			domain.FieldURL:    "https://pnm.example.com",
			domain.FieldAPIKey: "plugnmeet",
		}))
		_, _, _, err := svc.ServerCredentials(ctx)
		require.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		require.NoError(t, svc.Put(ctx, domain.ConfigServer, domain.SecretConfig{
			domain.FieldURL:       "https://pnm.example.com/",
			domain.FieldAPIKey:    "plugnmeet",
			domain.FieldAPISecret: "sk_live_abcdef123456",
		}))

		url, key, secret, err := svc.ServerCredentials(ctx)
		require.NoError(t, err)
		require.Equal(t, "https://pnm.example.com", url)
		require.Equal(t, "plugnmeet", key)
		require.Equal(t, "sk_live_abcdef123456", secret)
	})
}

func TestMailSettings(t *testing.T) {
	ctx := context.Background()
	svc := &ConfigService{Store: newTestStore(t)}

	t.Run("unset is nil, not an error", func(t *testing.T) {
		cfg, err := svc.MailSettings(ctx)
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("returns real values", func(t *testing.T) {
		require.NoError(t, svc.Put(ctx, domain.ConfigEmail, domain.SecretConfig{
			domain.FieldProvider: "resend",
			domain.FieldAPIKey:   "re_abcdef123456",
			domain.FieldFrom:     "noreply@example.com",
		}))

		cfg, err := svc.MailSettings(ctx)
		require.NoError(t, err)
		require.Equal(t, "re_abcdef123456", cfg[domain.FieldAPIKey])
	})
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
)

// Mask representation: a fixed token plus the last 4 characters of the
// secret. The token prefix doubles as the resubmission sentinel.
const (
	maskToken    = "••••••••"
	maskSentinel = "••••"
	maskSuffix   = 4
)

// ErrNotConfigured reports a proxy or mail call attempted before the
// corresponding config was saved.
var ErrNotConfigured = errors.New("not configured")

// ConfigService persists named configuration blobs and implements
// display-masking plus merge-on-update so a masked submission never
// destroys the real secret.
type ConfigService struct {
	Store store.Store
}

// Get returns the named config with every secret field masked. Missing
// configs read as store.ErrNotFound.
func (s *ConfigService) Get(ctx context.Context, name string) (domain.SecretConfig, error) {
	cfg, err := s.raw(ctx, name)
	if err != nil {
		return nil, err
	}

	masked := cfg.Clone()
	for _, field := range domain.SecretFields(name) {
		if v, ok := masked[field]; ok && v != "" {
			masked[field] = maskSecret(v)
		}
	}
	return masked, nil
}

// Put merges and persists fields. For every secret field whose incoming
// value is masked (sentinel prefix), the previously stored value is retained
// when one exists. A masked-looking value against a never-set field is
// stored literally.
func (s *ConfigService) Put(ctx context.Context, name string, incoming domain.SecretConfig) error {
	if incoming == nil {
		incoming = domain.SecretConfig{}
	}

	existing, err := s.raw(ctx, name)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	merged := incoming.Clone()
	for _, field := range domain.SecretFields(name) {
		v, ok := merged[field]
		if !ok || !strings.HasPrefix(v, maskSentinel) {
			continue
		}
		if prev, ok := existing[field]; ok && prev != "" {
			merged[field] = prev
		}
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return s.Store.Put(ctx, store.PrefixConfig+name, raw)
}

// ServerCredentials returns the real (unmasked) meeting-server credentials.
// Never exposed over HTTP; the signed proxy is the only consumer.
func (s *ConfigService) ServerCredentials(ctx context.Context) (baseURL, apiKey, apiSecret string, err error) {
	cfg, err := s.raw(ctx, domain.ConfigServer)
	if errors.Is(err, store.ErrNotFound) {
		return "", "", "", ErrNotConfigured
	}
	if err != nil {
		return "", "", "", err
	}

	baseURL = strings.TrimRight(cfg[domain.FieldURL], "/")
	apiKey = cfg[domain.FieldAPIKey]
	apiSecret = cfg[domain.FieldAPISecret]
	if baseURL == "" || apiKey == "" || apiSecret == "" {
		return "", "", "", ErrNotConfigured
	}
	return baseURL, apiKey, apiSecret, nil
}

// MailSettings returns the real outbound-mail config, or nil when none was
// ever saved (the mailer then falls back to its defaults).
func (s *ConfigService) MailSettings(ctx context.Context) (domain.SecretConfig, error) {
	cfg, err := s.raw(ctx, domain.ConfigEmail)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return cfg, err
}

func (s *ConfigService) raw(ctx context.Context, name string) (domain.SecretConfig, error) {
	data, err := s.Store.Get(ctx, store.PrefixConfig+name)
	if err != nil {
		return nil, err
	}
	var cfg domain.SecretConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// maskSecret reveals only the last 4 characters; anything shorter is masked
// entirely. The result is never sufficient to reconstruct the value.
func maskSecret(v string) string {
	runes := []rune(v)
	if len(runes) <= maskSuffix {
		return maskToken
	}
	return maskToken + string(runes[len(runes)-maskSuffix:])
}

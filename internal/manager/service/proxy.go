package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/pnm"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/obs"
)

// ProxyService forwards console requests to the meeting server, signing them
// with the stored API secret so the secret never reaches a browser.
type ProxyService struct {
	Configs *ConfigService

	// Timeout bounds each upstream call; defaults to pnm.DefaultTimeout.
	Timeout time.Duration

	// Transport is swapped in tests.
	Transport http.RoundTripper
}

// Call signs body and forwards it to endpoint on the configured server.
// Missing config yields ErrNotConfigured, which is distinct from an upstream
// transport failure (pnm.ErrUpstream).
func (s *ProxyService) Call(ctx context.Context, endpoint string, body []byte) (pnm.Result, error) {
	baseURL, apiKey, apiSecret, err := s.Configs.ServerCredentials(ctx)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			obs.ObserveProxyCall("not_configured")
		}
		return pnm.Result{}, err
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = pnm.DefaultTimeout
	}

	client := &pnm.Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		HTTPClient: &http.Client{Timeout: timeout, Transport: s.Transport},
	}

	res, err := client.Call(ctx, endpoint, body)
	if err != nil {
		obs.ObserveProxyCall("upstream_error")
		return pnm.Result{}, err
	}

	obs.ObserveProxyCall("ok")
	return res, nil
}

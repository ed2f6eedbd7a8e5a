// Package pnm talks to a PlugNMeet meeting server. Every request body is
// signed with the shared API secret; the secret itself never leaves the
// server side of the console.
package pnm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/pkg/cryptox"
)

// Signature headers the meeting server verifies.
const (
	HeaderAPIKey    = "API-KEY"
	HeaderSignature = "HASH-SIGNATURE"
)

// DefaultTimeout bounds a single upstream call.
const DefaultTimeout = 15 * time.Second

// ErrUpstream reports a transport-level failure or a response that was not
// JSON. The caller never sees the underlying detail.
var ErrUpstream = errors.New("meeting server unavailable")

// Result is a relayed upstream response: status code plus the verbatim JSON
// body.
type Result struct {
	StatusCode int
	Body       json.RawMessage
}

// Client performs signed calls against one PlugNMeet deployment.
type Client struct {
	BaseURL   string // e.g. https://meet.example.com
	APIKey    string
	APISecret string

	// HTTPClient may be overridden for tests; defaults to a client with
	// DefaultTimeout.
	HTTPClient *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// Call POSTs body to the server's auth API at endpoint (e.g. "room/create").
// The signature is computed over the exact bytes transmitted; body must not
// be mutated afterwards.
func (c *Client) Call(ctx context.Context, endpoint string, body []byte) (Result, error) {
	url := fmt.Sprintf("%s/auth/%s", c.BaseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderAPIKey, c.APIKey)
	req.Header.Set(HeaderSignature, cryptox.Sign(body, c.APISecret))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if !json.Valid(payload) {
		return Result{}, fmt.Errorf("%w: non-JSON response", ErrUpstream)
	}

	return Result{StatusCode: resp.StatusCode, Body: payload}, nil
}

// Package mail delivers invite emails through one of the supported relay
// providers. Delivery is a black box to the rest of the system:
// Send(to, subject, html) either succeeds or fails.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Supported providers.
const (
	ProviderSMTP2Go      = "smtp2go"
	ProviderMailjet      = "mailjet"
	ProviderSendgrid     = "sendgrid"
	ProviderResend       = "resend"
	ProviderMailChannels = "mailchannels"
)

// DefaultTimeout bounds one provider API call.
const DefaultTimeout = 10 * time.Second

const defaultFrom = "noreply@example.com"

// Mailer sends a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Settings selects and authenticates a provider. Resolution order follows
// the reference system: an explicitly configured relay provider wins, then a
// Resend API key, then MailChannels as the unauthenticated fallback.
type Settings struct {
	Provider  string
	APIKey    string
	APISecret string
	From      string

	ResendAPIKey string // deployment-level fallback
}

// New builds a Mailer for the resolved provider. client may be nil.
func New(s Settings, client *http.Client) Mailer {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	provider := s.Provider
	if provider == "" || provider == ProviderMailChannels {
		if s.ResendAPIKey != "" {
			provider = ProviderResend
			if s.APIKey == "" {
				s.APIKey = s.ResendAPIKey
			}
		} else {
			provider = ProviderMailChannels
		}
	}

	from := s.From
	if from == "" {
		from = defaultFrom
	}

	return &httpMailer{
		provider:  provider,
		apiKey:    s.APIKey,
		apiSecret: s.APISecret,
		from:      from,
		client:    client,
	}
}

// httpMailer speaks the JSON APIs of the relay providers directly.
type httpMailer struct {
	provider  string
	apiKey    string
	apiSecret string
	from      string
	client    *http.Client

	// endpoint overrides the provider URL in tests.
	endpoint string
}

// Provider API endpoints.
var providerEndpoints = map[string]string{
	ProviderSMTP2Go:      "https://api.smtp2go.com/v3/email/send",
	ProviderMailjet:      "https://api.mailjet.com/v3.1/send",
	ProviderSendgrid:     "https://api.sendgrid.com/v3/mail/send",
	ProviderResend:       "https://api.resend.com/emails",
	ProviderMailChannels: "https://api.mailchannels.net/tx/v1/send",
}

func (m *httpMailer) Send(ctx context.Context, to, subject, html string) error {
	payload, headers, err := m.buildRequest(to, subject, html)
	if err != nil {
		return err
	}

	url := m.endpoint
	if url == "" {
		url = providerEndpoints[m.provider]
	}
	if url == "" {
		return fmt.Errorf("mail: unknown provider %q", m.provider)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: %s request failed: %w", m.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail: %s rejected the message: status %d", m.provider, resp.StatusCode)
	}
	return nil
}

func (m *httpMailer) buildRequest(to, subject, html string) ([]byte, map[string]string, error) {
	var (
		body    any
		headers = map[string]string{}
	)

	switch m.provider {
	case ProviderSMTP2Go:
		body = map[string]any{
			"api_key":   m.apiKey,
			"to":        []string{to},
			"sender":    m.from,
			"subject":   subject,
			"html_body": html,
		}

	case ProviderMailjet:
		auth := base64.StdEncoding.EncodeToString([]byte(m.apiKey + ":" + m.apiSecret))
		headers["Authorization"] = "Basic " + auth
		body = map[string]any{
			"Messages": []map[string]any{{
				"From":     map[string]string{"Email": m.from, "Name": "PlugNMeet"},
				"To":       []map[string]string{{"Email": to}},
				"Subject":  subject,
				"HTMLPart": html,
			}},
		}

	case ProviderSendgrid:
		headers["Authorization"] = "Bearer " + m.apiKey
		body = map[string]any{
			"personalizations": []map[string]any{{"to": []map[string]string{{"email": to}}}},
			"from":             map[string]string{"email": m.from},
			"subject":          subject,
			"content":          []map[string]string{{"type": "text/html", "value": html}},
		}

	case ProviderResend:
		headers["Authorization"] = "Bearer " + m.apiKey
		body = map[string]any{
			"from":    m.from,
			"to":      []string{to},
			"subject": subject,
			"html":    html,
		}

	case ProviderMailChannels:
		body = map[string]any{
			"personalizations": []map[string]any{{"to": []map[string]string{{"email": to}}}},
			"from":             map[string]string{"email": m.from, "name": "PlugNMeet"},
			"subject":          subject,
			"content":          []map[string]string{{"type": "text/html", "value": html}},
		}

	default:
		return nil, nil, fmt.Errorf("mail: unknown provider %q", m.provider)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}
	return payload, headers, nil
}

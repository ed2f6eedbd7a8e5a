package pnm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ifedan-ed/plugnmeet-manager/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	t.Parallel()

	const secret = "pnm-api-secret"
	body := []byte(`{"room_id":"demo","max_participants":10}`)

	t.Run("signs the exact transmitted body", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/room/create", r.URL.Path)
			require.Equal(t, "manager-key", r.Header.Get(HeaderAPIKey))

			got, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.Equal(t, body, got)
			require.True(t, cryptox.VerifySignature(got, secret, r.Header.Get(HeaderSignature)))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":true,"msg":"success"}`))
		}))
		defer upstream.Close()

		c := &Client{BaseURL: upstream.URL, APIKey: "manager-key", APISecret: secret}
		res, err := c.Call(context.Background(), "room/create", body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.JSONEq(t, `{"status":true,"msg":"success"}`, string(res.Body))
	})

	t.Run("relays upstream status verbatim", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":false,"msg":"invalid signature"}`))
		}))
		defer upstream.Close()

		c := &Client{BaseURL: upstream.URL, APIKey: "k", APISecret: "wrong"}
		res, err := c.Call(context.Background(), "room/create", body)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("non-JSON upstream response is an upstream error", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>gateway error</html>"))
		}))
		defer upstream.Close()

		c := &Client{BaseURL: upstream.URL, APIKey: "k", APISecret: secret}
		_, err := c.Call(context.Background(), "room/create", body)
		require.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("transport failure is an upstream error", func(t *testing.T) {
		c := &Client{BaseURL: "http://127.0.0.1:1", APIKey: "k", APISecret: secret}
		_, err := c.Call(context.Background(), "room/create", body)
		require.ErrorIs(t, err, ErrUpstream)
	})
}

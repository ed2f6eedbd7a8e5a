package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the hex-encoded HMAC-SHA256 of body under secret. The body
// must be the exact byte sequence that will be transmitted; signing a
// re-serialization of it can silently diverge from what goes on the wire.
//
// Sign is a pure function: identical inputs always yield identical output and
// it is safe for concurrent use.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature is a valid HMAC-SHA256 of body
// under secret. Used for connectivity tests against signed payloads.
func VerifySignature(body []byte, secret, signature string) bool {
	expected := Sign(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

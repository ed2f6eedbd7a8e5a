package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters for password digests.
const (
	digestIterations = 210_000
	digestKeyLength  = 32
	saltLength       = 16
)

// Digest derives a deterministic, one-way digest of password under the given
// deployment-wide salt. The same (password, salt) pair always yields the same
// hex string, which is what gets stored in place of the plaintext.
func Digest(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), digestIterations, digestKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyDigest reports whether password hashes to the stored digest under
// salt. The comparison is constant-time.
func VerifyDigest(password, salt, storedDigest string) bool {
	computed := Digest(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}

// GenerateSalt returns a fresh random salt suitable for Digest. The salt is
// not secret on its own but must be persisted durably before any digest
// derived from it is stored.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

package scytale

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintLen is the number of digest bytes kept in a fingerprint.
const fingerprintLen = 6

// Fingerprint returns a short, stable identifier for key material.
// Events and logs carry the fingerprint so runs can be correlated without the
// key itself leaving the caller. The result is 12 hex characters of a
// BLAKE2b-256 digest; the empty key maps to the empty string.
func Fingerprint(key string) string {
	if key == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:fingerprintLen])
}

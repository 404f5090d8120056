package token

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/shooping/list-server/internal/model"
)

// HashSecret derives the at-rest digest of an opaque refresh secret:
// SHA-256 over the UTF-8 bytes, base64-encoded. Deterministic and
// unsalted on purpose: the store does a point lookup by hash, and the
// secret space (a 122-bit random value) puts precomputation out of
// reach. Blank input is rejected so an empty string can never be hashed
// and persisted.
func HashSecret(secret string) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", model.ErrInvalidInput
	}

	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

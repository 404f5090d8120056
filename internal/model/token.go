package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenCodec signs and verifies self-contained access tokens.
// Verification is pure: no store access, so a token cannot be recalled
// before its expiry. Claims are only obtainable through Verify, which
// keeps the read path behind the signature check.
type AccessTokenCodec interface {
	Issue(user User) (string, error)
	Verify(token string) (AccessClaims, error)
}

// AccessClaims is the verified payload of an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Provider  AuthProvider
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasRole reports whether the verified claim set carries the named role.
func (c AccessClaims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

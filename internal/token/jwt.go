package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shooping/list-server/internal/model"
)

// claims is the wire shape of an access token payload.
type claims struct {
	jwt.RegisteredClaims
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Provider string   `json:"provider"`
	Roles    []string `json:"roles"`
}

// JWT implements model.AccessTokenCodec backed by symmetric HMAC.
// The signing key is fixed at construction; key rotation is out of scope.
type JWT struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWT creates an access-token codec with the provided signing secret,
// issuer name and token lifetime.
func NewJWT(secret, issuer string, accessTTL time.Duration) *JWT {
	return &JWT{secret: []byte(secret), issuer: issuer, accessTTL: accessTTL}
}

var _ model.AccessTokenCodec = (*JWT)(nil)

// Issue creates a signed access token for the user, embedding email,
// display name, auth provider and role names alongside the registered
// claims. Expiry is enforced at verification time, not here.
func (j *JWT) Issue(user model.User) (string, error) {
	return j.IssueWithTTL(user, j.accessTTL)
}

// IssueWithTTL issues with an explicit lifetime. Exists so tests can
// mint already-expired tokens without faking the clock.
func (j *JWT) IssueWithTTL(user model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    user.Email,
		Name:     user.Name,
		Provider: string(user.Provider),
		Roles:    user.RoleNames(),
	})

	signed, err := t.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the claim set.
// Expired-but-well-signed tokens fail with model.ErrAccessTokenExpired;
// cryptographic failures with model.ErrBadSignature; everything else
// with model.ErrAccessTokenMalformed.
func (j *JWT) Verify(tokenString string) (model.AccessClaims, error) {
	parsed := &claims{}
	t, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return model.AccessClaims{}, model.ErrAccessTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return model.AccessClaims{}, model.ErrBadSignature
		default:
			return model.AccessClaims{}, model.ErrAccessTokenMalformed
		}
	}
	if !t.Valid {
		return model.AccessClaims{}, model.ErrAccessTokenMalformed
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return model.AccessClaims{}, model.ErrAccessTokenMalformed
	}

	out := model.AccessClaims{
		UserID:   userID,
		Email:    parsed.Email,
		Name:     parsed.Name,
		Provider: model.AuthProvider(parsed.Provider),
		Roles:    parsed.Roles,
	}
	if parsed.IssuedAt != nil {
		out.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		out.ExpiresAt = parsed.ExpiresAt.Time
	}

	return out, nil
}

package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore persists refresh-token records keyed by the hash of
// their opaque secret. The raw secret is never stored.
//
// InTx runs fn against a store view whose operations share one
// transaction; the rotation engine uses it so that inserting the
// replacement and revoking the presented record commit together or not
// at all. Within a transaction FindByHashForUpdate must lock the row so
// two concurrent rotations of the same secret serialize; implementations
// without row locks may serialize whole transactions instead.
type RefreshTokenStore interface {
	Insert(ctx context.Context, token RefreshToken) (RefreshToken, error)
	FindByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	FindByHashForUpdate(ctx context.Context, tokenHash string) (RefreshToken, error)
	Save(ctx context.Context, token RefreshToken) error
	InTx(ctx context.Context, fn func(ctx context.Context, store RefreshTokenStore) error) error
}

// RequestMeta is audit metadata captured from the request that created
// a refresh token.
type RequestMeta struct {
	UserAgent string
	ClientIP  string
}

// RefreshToken is the persisted record behind one opaque refresh secret.
// A record is valid while RevokedAt is nil and ExpiresAt is in the
// future; it is mutated exactly once, by revocation, and never deleted
// here (expiry sweeping is a housekeeping concern outside this core).
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time

	// ReplacedByTokenID links to the successor record when revocation
	// happened because of rotation. Nil for logout revocations.
	ReplacedByTokenID *uuid.UUID

	// Audit metadata captured at creation, immutable afterwards.
	UserAgent string
	ClientIP  string

	CreatedAt time.Time
}

// NewRefreshToken builds a valid record for a freshly minted secret.
func NewRefreshToken(userID uuid.UUID, tokenHash string, expiresAt time.Time, userAgent, clientIP string) RefreshToken {
	return RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		UserAgent: userAgent,
		ClientIP:  clientIP,
		CreatedAt: time.Now(),
	}
}

// Revoke transitions the record out of Valid exactly once. replacedBy
// carries the successor ID for rotation and stays nil for logout.
// A second revocation is rejected, never silently accepted.
func (t *RefreshToken) Revoke(replacedBy *uuid.UUID) error {
	if t.RevokedAt != nil {
		return ErrTokenAlreadyRevoked
	}
	now := time.Now()
	t.RevokedAt = &now
	t.ReplacedByTokenID = replacedBy
	return nil
}

// IsRevoked reports whether the record was spent by rotation or logout.
func (t RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired reports wall-clock expiry relative to now. Expiry is a
// derived property, not a stored state.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

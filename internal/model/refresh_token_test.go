package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	expires := time.Now().Add(time.Hour)

	token := NewRefreshToken(userID, "hash", expires, "go-test", "127.0.0.1")
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "hash", token.TokenHash)
	assert.False(t, token.IsRevoked())
	assert.False(t, token.IsExpired(time.Now()))
	assert.Nil(t, token.ReplacedByTokenID)
}

func TestRefreshToken_Revoke(t *testing.T) {
	t.Parallel()

	token := NewRefreshToken(uuid.New(), "hash", time.Now().Add(time.Hour), "", "")

	successor := uuid.New()
	require.NoError(t, token.Revoke(&successor))
	assert.True(t, token.IsRevoked())
	require.NotNil(t, token.ReplacedByTokenID)
	assert.Equal(t, successor, *token.ReplacedByTokenID)
}

func TestRefreshToken_Revoke_Twice(t *testing.T) {
	t.Parallel()

	token := NewRefreshToken(uuid.New(), "hash", time.Now().Add(time.Hour), "", "")

	require.NoError(t, token.Revoke(nil))
	assert.ErrorIs(t, token.Revoke(nil), ErrTokenAlreadyRevoked)
	assert.Nil(t, token.ReplacedByTokenID)
}

func TestRefreshToken_IsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	token := NewRefreshToken(uuid.New(), "hash", now.Add(time.Minute), "", "")

	assert.False(t, token.IsExpired(now))
	assert.True(t, token.IsExpired(now.Add(time.Minute)))
	assert.True(t, token.IsExpired(now.Add(2*time.Minute)))
}

func TestRefreshToken_RevokedBeatsExpired(t *testing.T) {
	t.Parallel()

	// A record can be both revoked and expired; revocation is checked
	// first by callers, so both predicates must hold independently.
	token := NewRefreshToken(uuid.New(), "hash", time.Now().Add(-time.Minute), "", "")
	require.NoError(t, token.Revoke(nil))

	assert.True(t, token.IsRevoked())
	assert.True(t, token.IsExpired(time.Now()))
}

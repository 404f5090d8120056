package model

import "errors"

var (
	// ErrTokenNotFound means the presented refresh secret does not match
	// any stored record. Rendered to clients identically to ErrTokenReused
	// so a caller cannot probe which of the two happened.
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrTokenReused means a revoked refresh token was presented again.
	// The secret was already spent by rotation or logout and came back,
	// which is the one failure here that warrants alerting.
	ErrTokenReused = errors.New("refresh token reuse detected")

	ErrTokenExpired = errors.New("refresh token expired")

	// ErrTokenAlreadyRevoked is returned by the logout path when the
	// record is already revoked. Logout is deliberately not idempotent.
	ErrTokenAlreadyRevoked = errors.New("refresh token already revoked")

	// Access-token verification failures.
	ErrAccessTokenExpired   = errors.New("access token expired")
	ErrAccessTokenMalformed = errors.New("access token malformed")
	ErrBadSignature         = errors.New("access token signature invalid")

	// ErrInvalidInput rejects blank secrets before they reach the hasher.
	ErrInvalidInput = errors.New("invalid token input")
)

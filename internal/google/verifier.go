package google

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// ErrInvalidToken covers every verification failure: bad signature,
// wrong audience, expiry, or an unverified email.
var ErrInvalidToken = errors.New("google id token invalid")

// Identity is the subset of a verified Google ID token this system uses.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Verifier validates Google-issued ID tokens.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

// IDTokenVerifier verifies tokens against Google's published keys,
// pinned to one OAuth client ID.
type IDTokenVerifier struct {
	clientID string
}

// NewIDTokenVerifier creates a verifier for the configured client ID.
func NewIDTokenVerifier(clientID string) *IDTokenVerifier {
	return &IDTokenVerifier{clientID: clientID}
}

var _ Verifier = (*IDTokenVerifier)(nil)

// Verify checks the token signature and audience and extracts the
// identity. Accounts with unverified emails are rejected.
func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return Identity{}, fmt.Errorf("%w: email not verified", ErrInvalidToken)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return Identity{}, fmt.Errorf("%w: no email claim", ErrInvalidToken)
	}

	return Identity{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}

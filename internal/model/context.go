package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager moves the authenticated identity between middleware
// and handlers. Claims only enter the context after Verify succeeded.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
	SetClaimsToContext(ctx context.Context, claims AccessClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (AccessClaims, bool)
}

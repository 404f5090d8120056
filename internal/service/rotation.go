package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/metrics"
	"github.com/shooping/list-server/internal/model"
	"github.com/shooping/list-server/internal/token"
)

// TokenPair is the result of issuing or rotating a session: a signed
// access token plus the raw refresh secret. The secret exists only here
// and in the client; the store only ever sees its hash.
type TokenPair struct {
	AccessToken   string
	RefreshSecret string
}

// RotationEngine drives the refresh-token state machine: issue, rotate
// with reuse detection, and revoke. Rotation runs inside one store
// transaction so the replacement insert and the old record's revocation
// commit together or not at all.
type RotationEngine struct {
	codec      model.AccessTokenCodec
	store      model.RefreshTokenStore
	users      model.UserStore
	refreshTTL time.Duration
	logger     *logger.Logger
	metrics    *metrics.Metrics
}

// NewRotationEngine creates the engine over the given codec and stores.
func NewRotationEngine(
	codec model.AccessTokenCodec,
	store model.RefreshTokenStore,
	users model.UserStore,
	refreshTTL time.Duration,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *RotationEngine {
	return &RotationEngine{
		codec:      codec,
		store:      store,
		users:      users,
		refreshTTL: refreshTTL,
		logger:     logger,
		metrics:    metrics,
	}
}

// mintSecret produces a fresh opaque refresh secret and its at-rest
// hash. A random UUID carries 122 bits of entropy.
func mintSecret() (secret, hash string, err error) {
	secret = uuid.NewString()
	hash, err = token.HashSecret(secret)
	if err != nil {
		return "", "", err
	}
	return secret, hash, nil
}

// IssueNew mints a token pair for a freshly authenticated user. Used by
// the login paths, which have no predecessor record to revoke.
func (e *RotationEngine) IssueNew(ctx context.Context, user model.User, meta model.RequestMeta) (TokenPair, error) {
	access, err := e.codec.Issue(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}

	secret, hash, err := mintSecret()
	if err != nil {
		return TokenPair{}, fmt.Errorf("mint refresh secret: %w", err)
	}

	record := model.NewRefreshToken(user.ID, hash, time.Now().Add(e.refreshTTL), meta.UserAgent, meta.ClientIP)
	if _, err := e.store.Insert(ctx, record); err != nil {
		return TokenPair{}, fmt.Errorf("persist refresh token: %w", err)
	}

	e.logger.Debug("refresh token issued", "token_id", record.ID, "user_id", user.ID)

	return TokenPair{AccessToken: access, RefreshSecret: secret}, nil
}

// Rotate validates the presented secret and exchanges it for a new pair,
// revoking the presented record and linking it to its successor.
//
// Failure order matters: an unknown hash fails ErrTokenNotFound, a
// revoked record fails ErrTokenReused before the expiry check runs, and
// only then can ErrTokenExpired fire. Reuse means a spent secret came
// back, so it is logged and counted; the chain's descendants are left
// untouched (only the presented link is already revoked).
func (e *RotationEngine) Rotate(ctx context.Context, presentedSecret string, meta model.RequestMeta) (TokenPair, error) {
	hash, err := token.HashSecret(presentedSecret)
	if err != nil {
		return TokenPair{}, err
	}

	var pair TokenPair
	err = e.store.InTx(ctx, func(ctx context.Context, store model.RefreshTokenStore) error {
		current, err := store.FindByHashForUpdate(ctx, hash)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrTokenNotFound
		}
		if err != nil {
			return fmt.Errorf("find refresh token: %w", err)
		}

		if current.IsRevoked() {
			e.logger.Error("refresh token reuse detected",
				"token_id", current.ID,
				"user_id", current.UserID)
			e.metrics.ReuseDetected.Inc()
			return model.ErrTokenReused
		}

		if current.IsExpired(time.Now()) {
			e.logger.Info("refresh token expired",
				"token_id", current.ID,
				"expires_at", current.ExpiresAt)
			return model.ErrTokenExpired
		}

		user, err := e.users.GetByID(ctx, current.UserID)
		if err != nil {
			return fmt.Errorf("load token owner: %w", err)
		}

		secret, newHash, err := mintSecret()
		if err != nil {
			return fmt.Errorf("mint refresh secret: %w", err)
		}

		replacement := model.NewRefreshToken(user.ID, newHash, time.Now().Add(e.refreshTTL), meta.UserAgent, meta.ClientIP)
		inserted, err := store.Insert(ctx, replacement)
		if err != nil {
			return fmt.Errorf("persist replacement token: %w", err)
		}

		if err := current.Revoke(&inserted.ID); err != nil {
			return err
		}
		if err := store.Save(ctx, current); err != nil {
			return fmt.Errorf("revoke rotated token: %w", err)
		}

		access, err := e.codec.Issue(user)
		if err != nil {
			return fmt.Errorf("issue access token: %w", err)
		}

		pair = TokenPair{AccessToken: access, RefreshSecret: secret}
		return nil
	})
	if err != nil {
		return TokenPair{}, err
	}

	e.metrics.Rotations.Inc()
	return pair, nil
}

// Revoke is the logout path: it spends the presented secret with no
// successor. Revoking an already-revoked record fails with
// ErrTokenAlreadyRevoked so a second logout with a spent token does
// not pass silently.
func (e *RotationEngine) Revoke(ctx context.Context, presentedSecret string) error {
	hash, err := token.HashSecret(presentedSecret)
	if err != nil {
		return err
	}

	err = e.store.InTx(ctx, func(ctx context.Context, store model.RefreshTokenStore) error {
		current, err := store.FindByHashForUpdate(ctx, hash)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrTokenNotFound
		}
		if err != nil {
			return fmt.Errorf("find refresh token: %w", err)
		}

		if err := current.Revoke(nil); err != nil {
			return err
		}
		if err := store.Save(ctx, current); err != nil {
			return fmt.Errorf("revoke refresh token: %w", err)
		}

		e.logger.Info("refresh token revoked", "token_id", current.ID, "user_id", current.UserID)
		return nil
	})
	if err != nil {
		return err
	}

	e.metrics.Revocations.Inc()
	return nil
}

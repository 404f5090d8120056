package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shooping/list-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db   querier
	pool *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db, pool: db}
}

const refreshTokenColumns = `id, user_id, token_hash, expires_at, revoked_at, replaced_by_token_id, user_agent, client_ip, created_at`

func (r *RefreshTokenRepository) Insert(ctx context.Context, token model.RefreshToken) (model.RefreshToken, error) {
	const query = `
        INSERT INTO refresh_tokens (
            id, user_id, token_hash, expires_at, revoked_at, replaced_by_token_id, user_agent, client_ip, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING ` + refreshTokenColumns

	return r.scanOne(r.db.QueryRow(ctx, query,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt,
		token.RevokedAt, token.ReplacedByTokenID, token.UserAgent, token.ClientIP, token.CreatedAt,
	), "insert")
}

func (r *RefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (model.RefreshToken, error) {
	const query = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, tokenHash), "find")
}

// FindByHashForUpdate locks the row for the rest of the transaction, so
// two concurrent rotations of the same secret serialize and the loser
// observes the winner's revocation.
func (r *RefreshTokenRepository) FindByHashForUpdate(ctx context.Context, tokenHash string) (model.RefreshToken, error) {
	const query = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, tokenHash), "lock")
}

func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken) error {
	const query = `
        UPDATE refresh_tokens
        SET revoked_at = $2, replaced_by_token_id = $3
        WHERE id = $1
    `

	tag, err := r.db.Exec(ctx, query, token.ID, token.RevokedAt, token.ReplacedByTokenID)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// InTx runs fn against a repository bound to one transaction. The
// transaction commits only if fn returns nil. Nested calls reuse the
// outer transaction.
func (r *RefreshTokenRepository) InTx(ctx context.Context, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	if r.pool == nil {
		return fn(ctx, r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(ctx, &RefreshTokenRepository{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) scanOne(row pgx.Row, op string) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := row.Scan(
		&rt.ID, &rt.UserID, &rt.TokenHash, &rt.ExpiresAt,
		&rt.RevokedAt, &rt.ReplacedByTokenID, &rt.UserAgent, &rt.ClientIP, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to %s refresh token: %w", op, err)
	}
	return rt, nil
}

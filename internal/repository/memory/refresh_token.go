// Package memory holds in-memory store implementations used by unit
// tests and local development. They mirror the postgres stores'
// behavior, including transaction rollback.
package memory

import (
	"context"
	"sync"

	"github.com/shooping/list-server/internal/model"
)

// RefreshTokenStore keeps refresh-token records in a map keyed by
// token hash. A single mutex serializes transactions, which stands in
// for the row lock the postgres store takes.
type RefreshTokenStore struct {
	mu     sync.Mutex
	byHash map[string]model.RefreshToken
}

// NewRefreshTokenStore creates an empty store.
func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{
		byHash: make(map[string]model.RefreshToken),
	}
}

// Insert stores a new record. The token hash must be unused.
func (s *RefreshTokenStore) Insert(_ context.Context, token model.RefreshToken) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insert(s.byHash, token)
}

// FindByHash returns the record with the given hash.
func (s *RefreshTokenStore) FindByHash(_ context.Context, tokenHash string) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.byHash, tokenHash)
}

// FindByHashForUpdate behaves like FindByHash. Exclusion comes from
// the transaction mutex rather than a row lock.
func (s *RefreshTokenStore) FindByHashForUpdate(_ context.Context, tokenHash string) (model.RefreshToken, error) {
	return s.FindByHash(context.Background(), tokenHash)
}

// Save overwrites an existing record.
func (s *RefreshTokenStore) Save(_ context.Context, token model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(s.byHash, token)
}

// InTx runs fn against a copy of the data and commits the copy back
// only if fn succeeds. Transactions are fully serialized.
func (s *RefreshTokenStore) InTx(ctx context.Context, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shadow := make(map[string]model.RefreshToken, len(s.byHash))
	for k, v := range s.byHash {
		shadow[k] = v
	}

	if err := fn(ctx, &txStore{byHash: shadow}); err != nil {
		return err
	}

	s.byHash = shadow
	return nil
}

// Len reports the number of stored records.
func (s *RefreshTokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byHash)
}

// txStore is the store view handed to an InTx callback. The outer
// mutex is already held, so no locking here.
type txStore struct {
	byHash map[string]model.RefreshToken
}

func (t *txStore) Insert(_ context.Context, token model.RefreshToken) (model.RefreshToken, error) {
	return insert(t.byHash, token)
}

func (t *txStore) FindByHash(_ context.Context, tokenHash string) (model.RefreshToken, error) {
	return find(t.byHash, tokenHash)
}

func (t *txStore) FindByHashForUpdate(_ context.Context, tokenHash string) (model.RefreshToken, error) {
	return find(t.byHash, tokenHash)
}

func (t *txStore) Save(_ context.Context, token model.RefreshToken) error {
	return save(t.byHash, token)
}

func (t *txStore) InTx(ctx context.Context, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	return fn(ctx, t)
}

func insert(byHash map[string]model.RefreshToken, token model.RefreshToken) (model.RefreshToken, error) {
	if _, ok := byHash[token.TokenHash]; ok {
		return model.RefreshToken{}, model.ErrInvalidInput
	}
	byHash[token.TokenHash] = token
	return token, nil
}

func find(byHash map[string]model.RefreshToken, tokenHash string) (model.RefreshToken, error) {
	token, ok := byHash[tokenHash]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return token, nil
}

func save(byHash map[string]model.RefreshToken, token model.RefreshToken) error {
	if _, ok := byHash[token.TokenHash]; !ok {
		return model.ErrNotFound
	}
	byHash[token.TokenHash] = token
	return nil
}

var _ model.RefreshTokenStore = (*RefreshTokenStore)(nil)

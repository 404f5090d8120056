package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shooping/list-server/internal/google"
	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/metrics"
	"github.com/shooping/list-server/internal/model"
)

// AuthResult is what the login and refresh flows hand back to the
// transport layer.
type AuthResult struct {
	AccessToken   string
	RefreshSecret string
	ExpiresIn     int64 // access token lifetime, seconds
}

// Session is the façade the transport layer talks to. It composes the
// codec, the rotation engine and the identity collaborators into the
// externally visible operations: login (local and Google), refresh,
// logout, access-token validation, plus registration and user reads.
type Session struct {
	users     model.UserStore
	roles     model.RoleStore
	codec     model.AccessTokenCodec
	engine    *RotationEngine
	verifier  google.Verifier
	accessTTL time.Duration
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

// NewSession creates the session façade.
func NewSession(
	users model.UserStore,
	roles model.RoleStore,
	codec model.AccessTokenCodec,
	engine *RotationEngine,
	verifier google.Verifier,
	accessTTL time.Duration,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *Session {
	return &Session{
		users:     users,
		roles:     roles,
		codec:     codec,
		engine:    engine,
		verifier:  verifier,
		accessTTL: accessTTL,
		logger:    logger,
		metrics:   metrics,
	}
}

// Register creates a local account with the default USER role. The
// email must not be taken.
func (s *Session) Register(ctx context.Context, email, name, password string) (model.User, error) {
	s.logger.Debug("registering user", "email", email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("registration rejected, email taken", "email", email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.NewLocalUser(email, name, string(hash))

	role, err := s.roles.GetByName(ctx, model.RoleUser)
	if err != nil {
		return model.User{}, fmt.Errorf("load default role: %w", err)
	}
	user.Roles = []model.Role{role}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", created.ID, "email", created.Email)
	return created, nil
}

// Login verifies email/password credentials and issues a token pair.
// Unknown email, wrong password and disabled accounts all fail with the
// same ErrInvalidCredentials.
func (s *Session) Login(ctx context.Context, email, password string, meta model.RequestMeta) (AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("login failed, unknown email", "email", email)
		return AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Info("login failed, wrong password", "user_id", user.ID)
		return AuthResult{}, model.ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.logger.Info("login failed, account disabled", "user_id", user.ID)
		return AuthResult{}, model.ErrInvalidCredentials
	}

	pair, err := s.engine.IssueNew(ctx, user, meta)
	if err != nil {
		return AuthResult{}, err
	}

	s.metrics.Logins.WithLabelValues(string(model.ProviderLocal)).Inc()
	s.logger.Info("login succeeded", "user_id", user.ID)

	return s.result(pair), nil
}

// LoginWithGoogle verifies a Google ID token, provisions the account on
// first sight, and issues a token pair.
func (s *Session) LoginWithGoogle(ctx context.Context, idToken string, meta model.RequestMeta) (AuthResult, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.logger.Info("google login failed", "error", err.Error())
		return AuthResult{}, err
	}

	user, err := s.users.GetByEmail(ctx, identity.Email)
	if errors.Is(err, model.ErrNotFound) {
		user, err = s.provisionGoogleUser(ctx, identity)
	}
	if err != nil {
		return AuthResult{}, err
	}

	if !user.IsActive() {
		s.logger.Info("google login failed, account disabled", "user_id", user.ID)
		return AuthResult{}, model.ErrInvalidCredentials
	}

	pair, err := s.engine.IssueNew(ctx, user, meta)
	if err != nil {
		return AuthResult{}, err
	}

	s.metrics.Logins.WithLabelValues(string(model.ProviderGoogle)).Inc()
	s.logger.Info("google login succeeded", "user_id", user.ID)

	return s.result(pair), nil
}

func (s *Session) provisionGoogleUser(ctx context.Context, identity google.Identity) (model.User, error) {
	user := model.NewGoogleUser(identity.Email, identity.Name)

	role, err := s.roles.GetByName(ctx, model.RoleUser)
	if err != nil {
		return model.User{}, fmt.Errorf("load default role: %w", err)
	}
	user.Roles = []model.Role{role}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("provision google user: %w", err)
	}

	s.logger.Info("google user provisioned", "user_id", created.ID, "email", created.Email)
	return created, nil
}

// Refresh rotates the presented secret for a new token pair.
func (s *Session) Refresh(ctx context.Context, refreshSecret string, meta model.RequestMeta) (AuthResult, error) {
	pair, err := s.engine.Rotate(ctx, refreshSecret, meta)
	if err != nil {
		return AuthResult{}, err
	}
	return s.result(pair), nil
}

// Logout revokes the presented refresh secret without a successor.
func (s *Session) Logout(ctx context.Context, refreshSecret string) error {
	return s.engine.Revoke(ctx, refreshSecret)
}

// ValidateAccessToken verifies a bearer token and returns its claims.
// Pure codec work: no store read, so revoking a refresh chain does not
// recall access tokens already in flight. Those die by expiry alone.
func (s *Session) ValidateAccessToken(_ context.Context, accessToken string) (model.AccessClaims, error) {
	return s.codec.Verify(accessToken)
}

// CurrentUser loads the account behind verified claims.
func (s *Session) CurrentUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ListUsers returns every account. Admin surface only.
func (s *Session) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *Session) result(pair TokenPair) AuthResult {
	return AuthResult{
		AccessToken:   pair.AccessToken,
		RefreshSecret: pair.RefreshSecret,
		ExpiresIn:     int64(s.accessTTL.Seconds()),
	}
}

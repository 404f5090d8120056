package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shooping/list-server/internal/google"
	"github.com/shooping/list-server/internal/metrics"
	"github.com/shooping/list-server/internal/mocks"
	"github.com/shooping/list-server/internal/model"
	"github.com/shooping/list-server/internal/repository/memory"
	"github.com/shooping/list-server/internal/testutil"
)

func newTestSession(t *testing.T, users *mocks.UserStore, roles *mocks.RoleStore, verifier *mocks.Verifier) (*Session, *metrics.Metrics) {
	t.Helper()

	codec := newTestCodec(t)
	store := memory.NewRefreshTokenStore()
	m := metrics.New(prometheus.NewRegistry())
	lg := testutil.MakeNoopLogger()
	engine := NewRotationEngine(codec, store, users, time.Hour, lg, m)

	return NewSession(users, roles, codec, engine, verifier, time.Minute, lg, m), m
}

func activeUser(t *testing.T, password string) model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.NewLocalUser("anna@example.com", "Anna", string(hash))
	user.Roles = []model.Role{{Name: model.RoleUser}}
	return user
}

func TestSession_Register(t *testing.T) {
	t.Parallel()

	users := mocks.NewUserStore(t)
	roles := mocks.NewRoleStore(t)

	users.On("GetByEmail", mock.Anything, "anna@example.com").Return(model.User{}, model.ErrNotFound)
	roles.On("GetByName", mock.Anything, model.RoleUser).Return(model.Role{Name: model.RoleUser}, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	s, _ := newTestSession(t, users, roles, mocks.NewVerifier(t))

	created, err := s.Register(context.Background(), "anna@example.com", "Anna", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", created.Email)
	assert.Equal(t, model.ProviderLocal, created.Provider)
	assert.True(t, created.HasRole(model.RoleUser))

	// The stored hash must verify against the raw password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
}

func TestSession_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, "anna@example.com").Return(model.User{Email: "anna@example.com"}, nil)

	s, _ := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	_, err := s.Register(context.Background(), "anna@example.com", "Anna", "s3cret-pass")
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestSession_Login(t *testing.T) {
	t.Parallel()

	user := activeUser(t, "s3cret-pass")

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	s, m := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	res, err := s.Login(context.Background(), user.Email, "s3cret-pass", testMeta)
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshSecret)
	assert.Equal(t, int64(60), res.ExpiresIn)
	assert.Equal(t, float64(1), promtest.ToFloat64(m.Logins.WithLabelValues("LOCAL")))

	claims, err := s.ValidateAccessToken(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Contains(t, claims.Roles, model.RoleUser)
}

func TestSession_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(model.User{}, model.ErrNotFound)

	s, _ := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	_, err := s.Login(context.Background(), "ghost@example.com", "whatever", testMeta)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSession_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	user := activeUser(t, "s3cret-pass")

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	s, _ := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	_, err := s.Login(context.Background(), user.Email, "not-the-password", testMeta)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSession_Login_DisabledAccount(t *testing.T) {
	t.Parallel()

	user := activeUser(t, "s3cret-pass")
	user.Status = model.StatusDisabled

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	s, _ := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	_, err := s.Login(context.Background(), user.Email, "s3cret-pass", testMeta)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSession_LoginWithGoogle_ExistingUser(t *testing.T) {
	t.Parallel()

	user := model.NewGoogleUser("anna@example.com", "Anna")
	user.Roles = []model.Role{{Name: model.RoleUser}}

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	verifier := mocks.NewVerifier(t)
	verifier.On("Verify", mock.Anything, "google-id-token").
		Return(google.Identity{Subject: "g-123", Email: user.Email, Name: user.Name}, nil)

	s, m := newTestSession(t, users, mocks.NewRoleStore(t), verifier)

	res, err := s.LoginWithGoogle(context.Background(), "google-id-token", testMeta)
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, float64(1), promtest.ToFloat64(m.Logins.WithLabelValues("GOOGLE")))
}

func TestSession_LoginWithGoogle_ProvisionsNewUser(t *testing.T) {
	t.Parallel()

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(model.User{}, model.ErrNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

	roles := mocks.NewRoleStore(t)
	roles.On("GetByName", mock.Anything, model.RoleUser).Return(model.Role{Name: model.RoleUser}, nil)

	verifier := mocks.NewVerifier(t)
	verifier.On("Verify", mock.Anything, "google-id-token").
		Return(google.Identity{Subject: "g-456", Email: "new@example.com", Name: "New User"}, nil)

	s, _ := newTestSession(t, users, roles, verifier)

	res, err := s.LoginWithGoogle(context.Background(), "google-id-token", testMeta)
	require.NoError(t, err)

	claims, err := s.ValidateAccessToken(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", claims.Email)
	assert.Equal(t, model.ProviderGoogle, claims.Provider)
}

func TestSession_LoginWithGoogle_InvalidToken(t *testing.T) {
	t.Parallel()

	verifier := mocks.NewVerifier(t)
	verifier.On("Verify", mock.Anything, "bad-token").Return(google.Identity{}, google.ErrInvalidToken)

	s, _ := newTestSession(t, mocks.NewUserStore(t), mocks.NewRoleStore(t), verifier)

	_, err := s.LoginWithGoogle(context.Background(), "bad-token", testMeta)
	assert.ErrorIs(t, err, google.ErrInvalidToken)
}

func TestSession_RefreshAndLogout(t *testing.T) {
	t.Parallel()

	user := activeUser(t, "s3cret-pass")

	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	s, _ := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	first, err := s.Login(context.Background(), user.Email, "s3cret-pass", testMeta)
	require.NoError(t, err)

	second, err := s.Refresh(context.Background(), first.RefreshSecret, testMeta)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshSecret, second.RefreshSecret)
	assert.Equal(t, int64(60), second.ExpiresIn)

	require.NoError(t, s.Logout(context.Background(), second.RefreshSecret))

	// Both the spent and the revoked secrets are dead now.
	_, err = s.Refresh(context.Background(), first.RefreshSecret, testMeta)
	assert.ErrorIs(t, err, model.ErrTokenReused)
	_, err = s.Refresh(context.Background(), second.RefreshSecret, testMeta)
	assert.ErrorIs(t, err, model.ErrTokenReused)
}

func TestSession_ValidateAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, mocks.NewUserStore(t), mocks.NewRoleStore(t), mocks.NewVerifier(t))

	_, err := s.ValidateAccessToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, model.ErrAccessTokenMalformed)
}

func TestSession_CurrentUserAndList(t *testing.T) {
	t.Parallel()

	user := activeUser(t, "s3cret-pass")

	users := mocks.NewUserStore(t)
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	users.On("List", mock.Anything).Return([]model.User{user}, nil)

	s, _ := newTestSession(t, users, mocks.NewRoleStore(t), mocks.NewVerifier(t))

	got, err := s.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	all, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

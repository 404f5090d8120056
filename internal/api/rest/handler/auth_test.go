package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	restctx "github.com/shooping/list-server/internal/api/rest/context"
	"github.com/shooping/list-server/internal/api/rest/handler/mocks"
	"github.com/shooping/list-server/internal/config"
	"github.com/shooping/list-server/internal/model"
	"github.com/shooping/list-server/internal/service"
	"github.com/shooping/list-server/internal/testutil"
)

func testCookieConfig() config.Cookie {
	return config.Cookie{Name: "refresh_token", Path: "/api/v1/auth", Secure: true, SameSite: "Strict"}
}

func newAuthHandler(t *testing.T, svc *mocks.SessionService) *Auth {
	t.Helper()
	return NewAuth(svc, NewCookies(testCookieConfig()), restctx.NewManager(), 720*time.Hour, testutil.MakeNoopLogger())
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			return c
		}
	}
	return nil
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	user := model.NewLocalUser("anna@example.com", "Anna", "hash")
	user.Roles = []model.Role{{Name: model.RoleUser}}
	svc.On("Register", mock.Anything, "anna@example.com", "Anna", "s3cret-pass").Return(user, nil)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"anna@example.com","name":"Anna","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var res userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "anna@example.com", res.Email)
	assert.Equal(t, []string{model.RoleUser}, res.Roles)
}

func TestAuth_Register_ShortPassword(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, mocks.NewSessionService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"anna@example.com","name":"Anna","password":"short"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Register", mock.Anything, "anna@example.com", "Anna", "s3cret-pass").Return(model.User{}, model.ErrEmailTaken)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"anna@example.com","name":"Anna","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Login", mock.Anything, "anna@example.com", "s3cret-pass", mock.AnythingOfType("model.RequestMeta")).
		Return(service.AuthResult{AccessToken: "jwt", RefreshSecret: "secret", ExpiresIn: 900}, nil)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"anna@example.com","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var res authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "jwt", res.AccessToken)
	assert.Equal(t, "secret", res.RefreshToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(900), res.ExpiresIn)

	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "secret", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}

func TestAuth_Login_CookieOnly(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Login", mock.Anything, "anna@example.com", "s3cret-pass", mock.AnythingOfType("model.RequestMeta")).
		Return(service.AuthResult{AccessToken: "jwt", RefreshSecret: "secret", ExpiresIn: 900}, nil)

	cfg := testCookieConfig()
	cfg.CookieOnly = true
	h := NewAuth(svc, NewCookies(cfg), restctx.NewManager(), 720*time.Hour, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"anna@example.com","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The secret travels in the cookie only, not in the body.
	var res authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.RefreshToken)

	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "secret", cookie.Value)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Login", mock.Anything, "anna@example.com", "wrong", mock.AnythingOfType("model.RequestMeta")).
		Return(service.AuthResult{}, model.ErrInvalidCredentials)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"anna@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Refresh_FromCookie(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Refresh", mock.Anything, "old-secret", mock.AnythingOfType("model.RequestMeta")).
		Return(service.AuthResult{AccessToken: "jwt2", RefreshSecret: "new-secret", ExpiresIn: 900}, nil)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-secret"})
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "new-secret", cookie.Value)
}

func TestAuth_Refresh_FromBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Refresh", mock.Anything, "old-secret", mock.AnythingOfType("model.RequestMeta")).
		Return(service.AuthResult{AccessToken: "jwt2", RefreshSecret: "new-secret", ExpiresIn: 900}, nil)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refresh_token":"old-secret"}`))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Refresh_Missing(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, mocks.NewSessionService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Refresh_ReusedToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Refresh", mock.Anything, "spent", mock.AnythingOfType("model.RequestMeta")).
		Return(service.AuthResult{}, model.ErrTokenReused)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "spent"})
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The dead cookie is cleared.
	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestAuth_Refresh_UnknownAndReusedLookAlike(t *testing.T) {
	t.Parallel()

	body := func(err error) string {
		svc := mocks.NewSessionService(t)
		svc.On("Refresh", mock.Anything, "secret", mock.AnythingOfType("model.RequestMeta")).
			Return(service.AuthResult{}, err)

		h := newAuthHandler(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "secret"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		return rec.Body.String()
	}

	// An attacker must not learn whether a guessed secret ever existed.
	assert.Equal(t, body(model.ErrTokenNotFound), body(model.ErrTokenReused))
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Logout", mock.Anything, "secret").Return(nil)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "secret"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestAuth_Logout_AlreadyRevoked(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("Logout", mock.Anything, "secret").Return(model.ErrTokenAlreadyRevoked)

	h := newAuthHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "secret"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Cookie cleared even on failure.
	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	user := model.NewLocalUser("anna@example.com", "Anna", "hash")

	svc := mocks.NewSessionService(t)
	svc.On("CurrentUser", mock.Anything, user.ID).Return(user, nil)

	cm := restctx.NewManager()
	h := NewAuth(svc, NewCookies(testCookieConfig()), cm, 720*time.Hour, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req = req.WithContext(cm.SetUserIDToContext(req.Context(), user.ID))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var res userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, user.ID, res.ID)
}

func TestAuth_Me_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, mocks.NewSessionService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ListUsers_RequiresAdmin(t *testing.T) {
	t.Parallel()

	cm := restctx.NewManager()
	h := NewAuth(mocks.NewSessionService(t), NewCookies(testCookieConfig()), cm, 720*time.Hour, testutil.MakeNoopLogger())

	claims := model.AccessClaims{UserID: uuid.New(), Roles: []string{model.RoleUser}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req = req.WithContext(cm.SetClaimsToContext(req.Context(), claims))
	rec := httptest.NewRecorder()
	h.ListUsers(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_ListUsers_Admin(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("ListUsers", mock.Anything).Return([]model.User{model.NewLocalUser("anna@example.com", "Anna", "hash")}, nil)

	cm := restctx.NewManager()
	h := NewAuth(svc, NewCookies(testCookieConfig()), cm, 720*time.Hour, testutil.MakeNoopLogger())

	claims := model.AccessClaims{UserID: uuid.New(), Roles: []string{model.RoleAdmin}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req = req.WithContext(cm.SetClaimsToContext(req.Context(), claims))
	rec := httptest.NewRecorder()
	h.ListUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var res []userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res, 1)
}

func TestRequestMeta(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("User-Agent", "go-test")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	meta := requestMeta(req)
	assert.Equal(t, "go-test", meta.UserAgent)
	assert.Equal(t, "203.0.113.7", meta.ClientIP)

	req.Header.Del("X-Forwarded-For")
	req.RemoteAddr = "192.0.2.4:51234"
	meta = requestMeta(req)
	assert.Equal(t, "192.0.2.4", meta.ClientIP)
}

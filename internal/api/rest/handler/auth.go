package handler

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/model"
	"github.com/shooping/list-server/internal/service"
)

// SessionService is the session facade consumed by the auth handler.
type SessionService interface {
	Register(ctx context.Context, email, name, password string) (model.User, error)
	Login(ctx context.Context, email, password string, meta model.RequestMeta) (service.AuthResult, error)
	LoginWithGoogle(ctx context.Context, idToken string, meta model.RequestMeta) (service.AuthResult, error)
	Refresh(ctx context.Context, refreshSecret string, meta model.RequestMeta) (service.AuthResult, error)
	Logout(ctx context.Context, refreshSecret string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// Auth exposes the authentication endpoints.
type Auth struct {
	service        SessionService
	cookies        *Cookies
	contextManager model.ContextManager
	refreshTTL     time.Duration
	logger         *logger.Logger
}

// NewAuth creates the auth handler.
func NewAuth(service SessionService, cookies *Cookies, contextManager model.ContextManager, refreshTTL time.Duration, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		cookies:        cookies,
		contextManager: contextManager,
		refreshTTL:     refreshTTL,
		logger:         logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Provider:  string(user.Provider),
		Status:    string(user.Status),
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.Email == "" || req.Name == "" || len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "validation_error", "email, name and a password of at least 8 characters are required")
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/v1/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password, requestMeta(r))
	if err != nil {
		handleError(w, err)
		return
	}

	h.writeAuthResponse(w, res)
}

// GoogleLogin handles POST /api/v1/auth/google.
func (h *Auth) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := decodeJSON(w, r, &req); err != nil || req.IDToken == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	res, err := h.service.LoginWithGoogle(r.Context(), req.IDToken, requestMeta(r))
	if err != nil {
		handleError(w, err)
		return
	}

	h.writeAuthResponse(w, res)
}

// Refresh handles POST /api/v1/auth/refresh. The secret comes from the
// HttpOnly cookie when present, otherwise from the JSON body.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	secret, ok := h.refreshSecret(w, r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "missing refresh token")
		return
	}

	res, err := h.service.Refresh(r.Context(), secret, requestMeta(r))
	if err != nil {
		h.cookies.Clear(w)
		handleError(w, err)
		return
	}

	h.writeAuthResponse(w, res)
}

// Logout handles POST /api/v1/auth/logout. The cookie is cleared even
// when revocation fails, so the browser forgets a dead secret.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	secret, ok := h.refreshSecret(w, r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "missing refresh token")
		return
	}

	err := h.service.Logout(r.Context(), secret)
	h.cookies.Clear(w)
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/users/me.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /api/v1/admin/users. ADMIN role required.
func (h *Auth) ListUsers(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	if !claims.HasRole(model.RoleAdmin) {
		writeError(w, http.StatusForbidden, "forbidden", "access denied")
		return
	}

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	res := make([]userResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Auth) writeAuthResponse(w http.ResponseWriter, res service.AuthResult) {
	h.cookies.Set(w, res.RefreshSecret, time.Now().Add(h.refreshTTL))

	body := authResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshSecret,
		TokenType:    "Bearer",
		ExpiresIn:    res.ExpiresIn,
	}
	if h.cookies.CookieOnly() {
		body.RefreshToken = ""
	}

	writeJSON(w, http.StatusOK, body)
}

func (h *Auth) refreshSecret(w http.ResponseWriter, r *http.Request) (string, bool) {
	if secret, ok := h.cookies.Read(r); ok {
		return secret, true
	}

	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		return "", false
	}
	return req.RefreshToken, true
}

func requestMeta(r *http.Request) model.RequestMeta {
	return model.RequestMeta{
		UserAgent: r.UserAgent(),
		ClientIP:  clientIP(r),
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

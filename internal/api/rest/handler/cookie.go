package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/shooping/list-server/internal/config"
)

// Cookies writes and reads the refresh-secret cookie. The cookie is
// HttpOnly and scoped to the auth path so scripts and unrelated routes
// never see it.
type Cookies struct {
	cfg config.Cookie
}

// NewCookies creates a cookie helper from config.
func NewCookies(cfg config.Cookie) *Cookies {
	return &Cookies{cfg: cfg}
}

// CookieOnly reports whether refresh secrets must be stripped from JSON
// responses.
func (c *Cookies) CookieOnly() bool {
	return c.cfg.CookieOnly
}

// Set writes the refresh secret cookie expiring with the token.
func (c *Cookies) Set(w http.ResponseWriter, secret string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.Name,
		Value:    secret,
		Path:     c.cfg.Path,
		Domain:   c.cfg.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: c.sameSite(),
	})
}

// Clear expires the refresh secret cookie.
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.Name,
		Value:    "",
		Path:     c.cfg.Path,
		Domain:   c.cfg.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: c.sameSite(),
	})
}

// Read returns the refresh secret from the request cookie, if present.
func (c *Cookies) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.cfg.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (c *Cookies) sameSite() http.SameSite {
	switch strings.ToLower(c.cfg.SameSite) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

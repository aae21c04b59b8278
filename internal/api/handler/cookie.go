package handler

import (
	"net/http"
	"time"

	"github.com/core-platform/launchpad/internal/api/middleware"
)

// CookieConfig carries the deployment-specific session cookie attributes.
type CookieConfig struct {
	Domain string
	Secure bool
	MaxAge time.Duration
}

// sessionCookie builds the http-only, same-site-lax session cookie.
func (cfg CookieConfig) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Domain:   cfg.Domain,
	}
}

// expiredCookie overwrites the session cookie with an empty value and an
// immediately-past expiry, which is how logout revokes the browser session.
func (cfg CookieConfig) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Domain:   cfg.Domain,
	}
}

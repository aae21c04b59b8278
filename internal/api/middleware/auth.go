package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// identityKey is the echo context key the session identity is stored under.
const identityKey = "identity"

// Session authenticates a request from its session cookie. The referenced
// user is re-fetched on every request: an account deactivated after login is
// locked out immediately, even though its token stays cryptographically
// valid until expiry. That costs one lookup per request and is deliberate.
func Session(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthorized
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				// ErrExpiredToken / ErrInvalidToken both answer 401.
				return err
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil || !user.IsActive {
				return domain.ErrUnauthorized
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin gates a route to admin identities. It must run after Session.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Identity(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if claims.Role != domain.RoleAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// Identity returns the session claims attached by Session.
func Identity(c echo.Context) (*ports.SessionClaims, bool) {
	claims, ok := c.Get(identityKey).(*ports.SessionClaims)
	return claims, ok
}

// SetIdentity attaches claims to the context. Exported for tests.
func SetIdentity(c echo.Context, claims *ports.SessionClaims) {
	c.Set(identityKey, claims)
}

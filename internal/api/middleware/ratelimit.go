package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/api/metrics"
	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

// Rate limit windows per scope.
const (
	LoginScope  = "login"
	LoginLimit  = 5
	LoginWindow = 15 * time.Minute

	AdminScope  = "admin"
	AdminLimit  = 100
	AdminWindow = 15 * time.Minute
)

// RateLimit bounds requests per source IP within a sliding window. Limiter
// backend failures fail open: the limiter protects against abuse, it must
// never take the endpoint down with it.
func RateLimit(limiter ports.RateLimiter, scope string, limit int, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := scope + ":" + c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key, limit, window)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}

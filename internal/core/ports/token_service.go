package ports

import "github.com/core-platform/launchpad/internal/core/domain"

// SessionClaims is the claim set embedded in a session token. AssignedApps
// is a snapshot of active app slugs taken at login time; /api/me re-fetches
// live state and does not trust it.
type SessionClaims struct {
	UserID       uint
	Username     string
	Role         domain.Role
	AssignedApps []string
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Sign produces a tamper-evident, time-bounded token for claims.
	Sign(claims SessionClaims) (string, error)

	// Verify parses and validates a token. It returns domain.ErrExpiredToken
	// past expiry and domain.ErrInvalidToken for any structural or signature
	// problem.
	Verify(token string) (*SessionClaims, error)
}

package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User         *domain.User
	AssignedApps []string
	Token        string
}

// AuthService implements the session flows available to every user.
type AuthService interface {
	// Login verifies credentials and issues a session token. Every failure
	// mode returns domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Me re-fetches the caller's profile and the active apps assigned to it.
	Me(ctx context.Context, userID uint) (*domain.User, []domain.App, error)

	// ChangePassword verifies current before storing a hash of next.
	ChangePassword(ctx context.Context, userID uint, current, next string) error
}

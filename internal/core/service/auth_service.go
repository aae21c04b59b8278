package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/api/metrics"
	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
	"github.com/core-platform/launchpad/internal/hash"
)

const minPasswordLength = 8

// AuthService implements the session flows: login, profile re-fetch, and
// self-service password change.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, audit: audit, log: log}
}

// Login verifies credentials and issues a session token. Unknown usernames,
// inactive accounts and wrong passwords all collapse into
// domain.ErrInvalidCredentials so the response gives no enumeration signal.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.NewValidationError("Username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || !user.IsActive {
		s.log.Warn().Str("username", username).Msg("login attempt failed: user not found or inactive")
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !hash.Verify(password, user.PasswordHash) {
		s.log.Warn().Uint("user_id", user.ID).Str("username", username).Msg("login attempt failed: invalid password")
		s.audit.Record(ctx, &user.ID, domain.AuditLoginFailed, map[string]any{"username": username})
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	apps, err := s.users.ActiveAppsForUser(ctx, user.ID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	slugs := make([]string, 0, len(apps))
	for _, a := range apps {
		slugs = append(slugs, a.Slug)
	}

	token, err := s.tokens.Sign(ports.SessionClaims{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		AssignedApps: slugs,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", username).Msg("user logged in")
	s.audit.Record(ctx, &user.ID, domain.AuditLoginSuccess, map[string]any{"username": username})
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &ports.LoginResult{User: user, AssignedApps: slugs, Token: token}, nil
}

// Me re-fetches the caller's record and the active apps assigned to it. The
// token's embedded app snapshot is deliberately ignored here.
func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, []domain.App, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	apps, err := s.users.ActiveAppsForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, apps, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if current == "" || next == "" {
		return domain.NewValidationError("Current password and new password are required")
	}
	if len(next) < minPasswordLength {
		return domain.NewValidationError("New password must be at least 8 characters")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !hash.Verify(current, user.PasswordHash) {
		return domain.ErrCurrentPassword
	}

	hashed, err := hash.Password(next)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Info().Uint("user_id", user.ID).Msg("password changed")
	s.audit.Record(ctx, &user.ID, domain.AuditPasswordChanged, map[string]any{})
	return nil
}

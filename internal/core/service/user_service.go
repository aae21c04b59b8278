package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
	"github.com/core-platform/launchpad/internal/hash"
)

// UserAdminService manages user accounts on behalf of admins.
type UserAdminService struct {
	users ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserAdminService(users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *UserAdminService {
	return &UserAdminService{users: users, audit: audit, log: log}
}

func (s *UserAdminService) List(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{
			User:           u,
			AppCount:       len(u.AssignedAppIDs),
			AssignedAppIDs: u.AssignedAppIDs,
		})
	}
	return summaries, nil
}

func (s *UserAdminService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.NewValidationError("Username and password are required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError("Password must be at least 8 characters")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("Role must be admin or user")
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUserExists
	}

	hashed, err := hash.Password(in.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     active,
	})
	if err != nil {
		return nil, err
	}

	if len(in.AppIDs) > 0 {
		if err := s.users.AssignApps(ctx, user.ID, in.AppIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user created")
	s.audit.Record(ctx, &in.ActorID, domain.AuditUserCreated, map[string]any{
		"targetUserId": user.ID,
		"username":     user.Username,
	})
	return user, nil
}

func (s *UserAdminService) Update(ctx context.Context, id uint, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, domain.NewValidationError("Role must be admin or user")
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, id, ports.UserPatch{Role: in.Role, IsActive: in.IsActive})
	if err != nil {
		return nil, err
	}

	// A non-nil AppIDs slice replaces the whole assignment set, including
	// the empty slice which clears it.
	if in.AppIDs != nil {
		if err := s.users.ReplaceAssignments(ctx, id, in.AppIDs); err != nil {
			return nil, err
		}
	}

	changes := map[string]any{}
	if in.Role != nil {
		changes["globalRole"] = *in.Role
	}
	if in.IsActive != nil {
		changes["isActive"] = *in.IsActive
	}

	s.log.Info().Uint("user_id", id).Msg("user updated")
	s.audit.Record(ctx, &in.ActorID, domain.AuditUserUpdated, map[string]any{
		"targetUserId": id,
		"changes":      changes,
	})
	return user, nil
}

func (s *UserAdminService) SetPassword(ctx context.Context, id uint, password string, actorID uint) error {
	if len(password) < minPasswordLength {
		return domain.NewValidationError("Password must be at least 8 characters")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hashed, err := hash.Password(password)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Info().Uint("user_id", id).Msg("user password set by admin")
	s.audit.Record(ctx, &actorID, domain.AuditUserPasswordSet, map[string]any{
		"targetUserId": id,
	})
	return nil
}

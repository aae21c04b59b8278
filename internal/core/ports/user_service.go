package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// UserSummary is one row of the admin user listing.
type UserSummary struct {
	User           domain.User
	AppCount       int
	AssignedAppIDs []uint
}

// CreateUserInput carries the fields of an admin user-creation request.
// ActorID identifies the admin performing the action, for the audit trail.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
	IsActive *bool
	AppIDs   []uint
	ActorID  uint
}

// UpdateUserInput patches a user. AppIDs, when non-nil, replaces the whole
// assignment set.
type UpdateUserInput struct {
	Role     *domain.Role
	IsActive *bool
	AppIDs   []uint
	ActorID  uint
}

// UserAdminService manages user accounts on behalf of admins.
type UserAdminService interface {
	List(ctx context.Context) ([]UserSummary, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error)

	// SetPassword overrides a user's password without checking the current
	// one. Admin-only.
	SetPassword(ctx context.Context, id uint, password string, actorID uint) error
}

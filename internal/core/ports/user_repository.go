package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// UserPatch carries the admin-patchable user fields. Nil means "leave as is".
type UserPatch struct {
	Role     *domain.Role
	IsActive *bool
}

// UserRepository defines persistence for user accounts and their app
// assignments.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users, newest first, with AssignedAppIDs populated.
	List(ctx context.Context) ([]domain.User, error)

	Update(ctx context.Context, id uint, patch UserPatch) (*domain.User, error)
	SetPasswordHash(ctx context.Context, id uint, hash string) error

	// AssignApps links the given apps to the user, silently skipping pairs
	// that already exist.
	AssignApps(ctx context.Context, userID uint, appIDs []uint) error

	// ReplaceAssignments swaps the user's entire assignment set for appIDs
	// inside a single transaction.
	ReplaceAssignments(ctx context.Context, userID uint, appIDs []uint) error

	// ActiveAppsForUser returns the active apps assigned to the user.
	ActiveAppsForUser(ctx context.Context, userID uint) ([]domain.App, error)

	Count(ctx context.Context) (int64, error)
}

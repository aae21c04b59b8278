package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// AppRepository defines persistence for launchable apps.
type AppRepository interface {
	Create(ctx context.Context, app *domain.App) (*domain.App, error)
	FindByID(ctx context.Context, id uint) (*domain.App, error)
	FindBySlug(ctx context.Context, slug string) (*domain.App, error)

	// List returns all apps, newest first, active or not.
	List(ctx context.Context) ([]domain.App, error)

	// Save persists every field of app, including nil routing fields.
	Save(ctx context.Context, app *domain.App) (*domain.App, error)

	// AssignToAdmins links the app to every current admin user, skipping
	// pairs that already exist.
	AssignToAdmins(ctx context.Context, appID uint) error
}

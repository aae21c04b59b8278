package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// CreateAppInput carries the fields of an admin app-creation request.
type CreateAppInput struct {
	Name         string
	Slug         string
	Type         domain.AppType
	InternalPath string
	ExternalURL  string
	// IconSupplied distinguishes "icon omitted" from "icon set to an invalid
	// value"; only the latter is rejected.
	Icon         string
	IconSupplied bool
	Version      string
	IsActive     *bool
	ActorID      uint
}

// UpdateAppInput patches an app. Pointer fields distinguish omitted from
// explicitly-set values.
type UpdateAppInput struct {
	Name         *string
	Slug         *string
	Type         *domain.AppType
	InternalPath *string
	ExternalURL  *string
	Icon         *string
	Version      *string
	IsActive     *bool
	ActorID      uint
}

// AppAdminService manages launchable apps on behalf of admins.
type AppAdminService interface {
	List(ctx context.Context) ([]domain.App, error)
	Get(ctx context.Context, id uint) (*domain.App, error)
	Create(ctx context.Context, in CreateAppInput) (*domain.App, error)
	Update(ctx context.Context, id uint, in UpdateAppInput) (*domain.App, error)

	// Deactivate flips IsActive to false. The record is retained; there is
	// no hard delete anywhere in the system.
	Deactivate(ctx context.Context, id uint, actorID uint) (*domain.App, error)
}

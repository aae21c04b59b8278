package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// AuditRepository appends and lists immutable audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error

	// List returns entries newest first along with the total row count.
	List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, int64, error)
}

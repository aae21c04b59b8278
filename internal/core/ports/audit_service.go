package ports

import (
	"context"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// AuditRecorder appends audit entries on a best-effort basis. Record never
// returns an error: persistence failures are logged and counted, never
// propagated to the triggering request.
type AuditRecorder interface {
	Record(ctx context.Context, userID *uint, action string, metadata map[string]any)
}

// AuditService exposes the audit trail to admins.
type AuditService interface {
	AuditRecorder

	List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, int64, error)
}

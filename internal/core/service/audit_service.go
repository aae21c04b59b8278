package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/api/metrics"
	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

// AuditService appends and lists audit entries. Appends are best-effort:
// audit completeness is secondary to primary-operation availability.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record appends one entry. Failures are logged and counted, never returned;
// the write is detached from request cancellation so a client disconnect
// cannot drop the entry.
func (s *AuditService) Record(ctx context.Context, userID *uint, action string, metadata map[string]any) {
	if metadata == nil {
		metadata = map[string]any{}
	}
	entry := &domain.AuditEntry{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Error().Err(err).Str("action", action).Msg("audit write failed")
		metrics.AuditWriteFailuresTotal.Inc()
	}
}

// List returns entries newest first. Limit defaults to 100 and is capped;
// negative offsets are treated as zero.
func (s *AuditService) List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, int64, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

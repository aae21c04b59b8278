package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/core-platform/launchpad/internal/core/domain"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	m := &auditLogModel{
		UserID:   entry.UserID,
		Action:   entry.Action,
		Metadata: entry.Metadata,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&auditLogModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	var models []auditLogModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}

	usernames, err := r.usernamesFor(ctx, models)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]domain.AuditEntry, 0, len(models))
	for _, m := range models {
		e := domain.AuditEntry{
			ID:        m.ID,
			UserID:    m.UserID,
			Action:    m.Action,
			Metadata:  m.Metadata,
			CreatedAt: m.CreatedAt,
		}
		if m.UserID != nil {
			e.Username = usernames[*m.UserID]
		}
		entries = append(entries, e)
	}
	return entries, total, nil
}

func (r *AuditRepository) usernamesFor(ctx context.Context, models []auditLogModel) (map[uint]string, error) {
	ids := make([]uint, 0, len(models))
	seen := make(map[uint]struct{}, len(models))
	for _, m := range models {
		if m.UserID == nil {
			continue
		}
		if _, ok := seen[*m.UserID]; ok {
			continue
		}
		seen[*m.UserID] = struct{}{}
		ids = append(ids, *m.UserID)
	}
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var users []userModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("resolve audit usernames: %w", err)
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}

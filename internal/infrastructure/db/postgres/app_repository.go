package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/core-platform/launchpad/internal/core/domain"
)

type AppRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) *AppRepository {
	return &AppRepository{db: db}
}

func (r *AppRepository) Create(ctx context.Context, app *domain.App) (*domain.App, error) {
	m := appToModel(app)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert app: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AppRepository) FindByID(ctx context.Context, id uint) (*domain.App, error) {
	var m appModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppNotFound
		}
		return nil, fmt.Errorf("find app: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AppRepository) FindBySlug(ctx context.Context, slug string) (*domain.App, error) {
	var m appModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppNotFound
		}
		return nil, fmt.Errorf("find app: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AppRepository) List(ctx context.Context) ([]domain.App, error) {
	var models []appModel
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	apps := make([]domain.App, 0, len(models))
	for i := range models {
		apps = append(apps, *models[i].toDomain())
	}
	return apps, nil
}

// Save writes every column, including nil routing fields, so a type switch
// reliably clears the now-irrelevant one.
func (r *AppRepository) Save(ctx context.Context, app *domain.App) (*domain.App, error) {
	m := appToModel(app)
	err := r.db.WithContext(ctx).Model(&appModel{}).Where("id = ?", m.ID).
		Select("name", "slug", "type", "internal_path", "external_url", "icon", "version", "is_active").
		Updates(map[string]any{
			"name":          m.Name,
			"slug":          m.Slug,
			"type":          m.Type,
			"internal_path": m.InternalPath,
			"external_url":  m.ExternalURL,
			"icon":          m.Icon,
			"version":       m.Version,
			"is_active":     m.IsActive,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("save app: %w", err)
	}
	return r.FindByID(ctx, app.ID)
}

func (r *AppRepository) AssignToAdmins(ctx context.Context, appID uint) error {
	var adminIDs []uint
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Where("role = ?", string(domain.RoleAdmin)).
		Pluck("id", &adminIDs).Error
	if err != nil {
		return fmt.Errorf("find admins: %w", err)
	}
	if len(adminIDs) == 0 {
		return nil
	}
	rows := make([]userAppModel, 0, len(adminIDs))
	for _, id := range adminIDs {
		rows = append(rows, userAppModel{UserID: id, AppID: appID})
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("assign app to admins: %w", err)
	}
	return nil
}

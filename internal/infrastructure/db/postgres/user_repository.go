package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := &userModel{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsActive:     user.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var links []userAppModel
	if err := r.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	byUser := make(map[uint][]uint, len(models))
	for _, l := range links {
		byUser[l.UserID] = append(byUser[l.UserID], l.AppID)
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		u := models[i].toDomain()
		u.AssignedAppIDs = byUser[u.ID]
		if u.AssignedAppIDs == nil {
			u.AssignedAppIDs = []uint{}
		}
		users = append(users, *u)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, patch ports.UserPatch) (*domain.User, error) {
	updates := map[string]any{}
	if patch.Role != nil {
		updates["role"] = string(*patch.Role)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("update user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrUserNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("set password hash: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) AssignApps(ctx context.Context, userID uint, appIDs []uint) error {
	if len(appIDs) == 0 {
		return nil
	}
	rows := make([]userAppModel, 0, len(appIDs))
	for _, appID := range appIDs {
		rows = append(rows, userAppModel{UserID: userID, AppID: appID})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("assign apps: %w", err)
	}
	return nil
}

// ReplaceAssignments swaps the whole assignment set in one transaction so a
// crash cannot leave the user with no assignments at all.
func (r *UserRepository) ReplaceAssignments(ctx context.Context, userID uint, appIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&userAppModel{}).Error; err != nil {
			return fmt.Errorf("clear assignments: %w", err)
		}
		if len(appIDs) == 0 {
			return nil
		}
		rows := make([]userAppModel, 0, len(appIDs))
		for _, appID := range appIDs {
			rows = append(rows, userAppModel{UserID: userID, AppID: appID})
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return fmt.Errorf("insert assignments: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) ActiveAppsForUser(ctx context.Context, userID uint) ([]domain.App, error) {
	var models []appModel
	err := r.db.WithContext(ctx).
		Joins("JOIN user_apps ON user_apps.app_id = apps.id").
		Where("user_apps.user_id = ? AND apps.is_active = ?", userID, true).
		Order("apps.created_at DESC, apps.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("active apps for user: %w", err)
	}
	apps := make([]domain.App, 0, len(models))
	for i := range models {
		apps = append(apps, *models[i].toDomain())
	}
	return apps, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

package postgres

import (
	"time"

	"github.com/core-platform/launchpad/internal/core/domain"
)

// Storage models are kept separate from domain entities so schema concerns
// (column tags, join rows) never leak into the core.

type userModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type appModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Slug         string `gorm:"uniqueIndex;not null"`
	Type         string `gorm:"not null"`
	InternalPath *string
	ExternalURL  *string
	Icon         *string
	Version      string `gorm:"not null;default:1.0.0"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (appModel) TableName() string { return "apps" }

// userAppModel is the assignment join row. The composite primary key doubles
// as the uniqueness constraint on (user_id, app_id).
type userAppModel struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	AppID     uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

func (userAppModel) TableName() string { return "user_apps" }

type auditLogModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    *uint          `gorm:"index"`
	Action    string         `gorm:"not null;index"`
	Metadata  map[string]any `gorm:"serializer:json"`
	CreatedAt time.Time      `gorm:"index"`
}

func (auditLogModel) TableName() string { return "audit_logs" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func (m *appModel) toDomain() *domain.App {
	return &domain.App{
		ID:           m.ID,
		Name:         m.Name,
		Slug:         m.Slug,
		Type:         domain.AppType(m.Type),
		InternalPath: m.InternalPath,
		ExternalURL:  m.ExternalURL,
		Icon:         m.Icon,
		Version:      m.Version,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func appToModel(a *domain.App) *appModel {
	return &appModel{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Type:         string(a.Type),
		InternalPath: a.InternalPath,
		ExternalURL:  a.ExternalURL,
		Icon:         a.Icon,
		Version:      a.Version,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
	}
}

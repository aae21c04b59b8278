package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

const defaultAppVersion = "1.0.0"

// AppAdminService manages launchable apps on behalf of admins.
type AppAdminService struct {
	apps  ports.AppRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAppAdminService(apps ports.AppRepository, audit ports.AuditRecorder, log zerolog.Logger) *AppAdminService {
	return &AppAdminService{apps: apps, audit: audit, log: log}
}

func (s *AppAdminService) List(ctx context.Context) ([]domain.App, error) {
	return s.apps.List(ctx)
}

func (s *AppAdminService) Get(ctx context.Context, id uint) (*domain.App, error) {
	return s.apps.FindByID(ctx, id)
}

func invalidIconError() error {
	return domain.NewValidationError("Invalid iconKey. Allowed values: " + strings.Join(domain.AllowedIconKeys, ", "))
}

func (s *AppAdminService) Create(ctx context.Context, in ports.CreateAppInput) (*domain.App, error) {
	if in.Name == "" || in.Slug == "" || in.Type == "" {
		return nil, domain.NewValidationError("Name, slug, and type are required")
	}
	if !in.Type.Valid() {
		return nil, domain.NewValidationError("Type must be internal or external")
	}
	if in.Type == domain.AppTypeInternal && in.InternalPath == "" {
		return nil, domain.NewValidationError("Internal path is required for internal apps")
	}
	if in.Type == domain.AppTypeExternal && in.ExternalURL == "" {
		return nil, domain.NewValidationError("External URL is required for external apps")
	}

	var icon *string
	if in.IconSupplied {
		key := domain.NormalizeIconKey(in.Icon)
		if key == "" {
			return nil, invalidIconError()
		}
		icon = &key
	}

	if _, err := s.apps.FindBySlug(ctx, in.Slug); err == nil {
		return nil, domain.ErrSlugExists
	}

	version := in.Version
	if version == "" {
		version = defaultAppVersion
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	app := &domain.App{
		Name:     in.Name,
		Slug:     in.Slug,
		Type:     in.Type,
		Icon:     icon,
		Version:  version,
		IsActive: active,
	}
	// Type dictates the routing field; whatever was supplied for the other
	// one is discarded.
	if in.Type == domain.AppTypeInternal {
		path := in.InternalPath
		app.InternalPath = &path
	} else {
		url := in.ExternalURL
		app.ExternalURL = &url
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	// Every admin gets the new app. Best-effort: a failure here leaves the
	// app created but unassigned, which admins can repair from the UI.
	if err := s.apps.AssignToAdmins(ctx, created.ID); err != nil {
		s.log.Error().Err(err).Uint("app_id", created.ID).Msg("auto-assign to admins failed")
	}

	s.log.Info().Uint("app_id", created.ID).Str("slug", created.Slug).Msg("app created")
	s.audit.Record(ctx, &in.ActorID, domain.AuditAppCreated, map[string]any{
		"appId": created.ID,
		"slug":  created.Slug,
		"name":  created.Name,
	})
	return created, nil
}

func (s *AppAdminService) Update(ctx context.Context, id uint, in ports.UpdateAppInput) (*domain.App, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Slug != nil && *in.Slug != app.Slug {
		if _, err := s.apps.FindBySlug(ctx, *in.Slug); err == nil {
			return nil, domain.ErrSlugExists
		}
	}

	changes := map[string]any{}

	if in.Name != nil {
		app.Name = *in.Name
		changes["name"] = *in.Name
	}
	if in.Slug != nil {
		app.Slug = *in.Slug
		changes["slug"] = *in.Slug
	}
	if in.Icon != nil {
		key := domain.NormalizeIconKey(*in.Icon)
		if key == "" {
			return nil, invalidIconError()
		}
		app.Icon = &key
		changes["icon"] = key
	}
	if in.Version != nil {
		app.Version = *in.Version
		changes["version"] = *in.Version
	}
	if in.IsActive != nil {
		app.IsActive = *in.IsActive
		changes["isActive"] = *in.IsActive
	}

	switch {
	case in.Type != nil:
		if !in.Type.Valid() {
			return nil, domain.NewValidationError("Type must be internal or external")
		}
		app.Type = *in.Type
		changes["type"] = *in.Type
		// Switching type swaps the routing field and clears the old one.
		if *in.Type == domain.AppTypeInternal {
			app.InternalPath = in.InternalPath
			app.ExternalURL = nil
		} else {
			app.ExternalURL = in.ExternalURL
			app.InternalPath = nil
		}
	case app.Type == domain.AppTypeInternal && in.InternalPath != nil:
		// Type unchanged: only a supplied value for the field matching the
		// current type moves; the other field is ignored, never cleared.
		app.InternalPath = in.InternalPath
	case app.Type == domain.AppTypeExternal && in.ExternalURL != nil:
		app.ExternalURL = in.ExternalURL
	}

	updated, err := s.apps.Save(ctx, app)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("app_id", id).Msg("app updated")
	s.audit.Record(ctx, &in.ActorID, domain.AuditAppUpdated, map[string]any{
		"appId":   id,
		"changes": changes,
	})
	return updated, nil
}

func (s *AppAdminService) Deactivate(ctx context.Context, id uint, actorID uint) (*domain.App, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	app.IsActive = false
	updated, err := s.apps.Save(ctx, app)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("app_id", id).Msg("app deactivated")
	s.audit.Record(ctx, &actorID, domain.AuditAppDeactivated, map[string]any{
		"appId": id,
		"slug":  app.Slug,
	})
	return updated, nil
}

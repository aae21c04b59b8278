package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
	"github.com/core-platform/launchpad/internal/hash"
)

func strptr(s string) *string { return &s }

// seedApps are the launcher tiles of a fresh install.
var seedApps = []domain.App{
	{
		Name:         "Trade Show",
		Slug:         "trade-show",
		Type:         domain.AppTypeInternal,
		InternalPath: strptr("/apps/trade-show"),
		Icon:         strptr("shop"),
		Version:      "1.0.0",
		IsActive:     true,
	},
	{
		Name:         "Tablets",
		Slug:         "tablets",
		Type:         domain.AppTypeInternal,
		InternalPath: strptr("/apps/tablets"),
		Icon:         strptr("grid"),
		Version:      "1.0.0",
		IsActive:     true,
	},
	{
		Name:        "Expenses",
		Slug:        "expenses",
		Type:        domain.AppTypeExternal,
		ExternalURL: strptr("https://example.com/expenses"),
		Icon:        strptr("credit-card"),
		Version:     "1.0.0",
		IsActive:    true,
	},
}

// Seed bootstraps an empty database with the admin account, the sample apps,
// and their assignments. It is a no-op when any user already exists.
func Seed(ctx context.Context, users ports.UserRepository, apps ports.AppRepository, audit ports.AuditRecorder, adminUsername, adminPassword string, log zerolog.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Msg("database already seeded, skipping")
		return nil
	}

	if adminPassword == "" {
		return fmt.Errorf("seed: ADMIN_PASSWORD is required to bootstrap an empty database")
	}

	hashed, err := hash.Password(adminPassword)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	admin, err := users.Create(ctx, &domain.User{
		Username:     adminUsername,
		PasswordHash: hashed,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}
	log.Info().Str("username", adminUsername).Msg("created admin user")

	appIDs := make([]uint, 0, len(seedApps))
	for i := range seedApps {
		app := seedApps[i]
		created, err := apps.Create(ctx, &app)
		if err != nil {
			return fmt.Errorf("seed: create app %s: %w", app.Slug, err)
		}
		appIDs = append(appIDs, created.ID)
		log.Info().Str("slug", created.Slug).Msg("created app")
	}

	if err := users.AssignApps(ctx, admin.ID, appIDs); err != nil {
		return fmt.Errorf("seed: assign apps: %w", err)
	}

	audit.Record(ctx, &admin.ID, domain.AuditSeedCompleted, map[string]any{
		"appsCreated": len(appIDs),
	})
	log.Info().Msg("database seeding completed")
	return nil
}

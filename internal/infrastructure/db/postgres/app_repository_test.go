package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/core-platform/launchpad/internal/core/domain"
)

func TestAppRepository_CreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewAppRepository(db)
	ctx := context.Background()

	app := createTestApp(t, repo, "trade-show", true)
	require.NotZero(t, app.ID)

	byID, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "trade-show", byID.Slug)
	require.NotNil(t, byID.InternalPath)

	bySlug, err := repo.FindBySlug(ctx, "trade-show")
	require.NoError(t, err)
	require.Equal(t, app.ID, bySlug.ID)

	_, err = repo.FindByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrAppNotFound)

	_, err = repo.FindBySlug(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrAppNotFound)
}

func TestAppRepository_DuplicateSlug(t *testing.T) {
	db := testDB(t)
	repo := NewAppRepository(db)

	createTestApp(t, repo, "dup", true)
	path := "/apps/dup"
	_, err := repo.Create(context.Background(), &domain.App{
		Name:         "Other",
		Slug:         "dup",
		Type:         domain.AppTypeInternal,
		InternalPath: &path,
		Version:      "1.0.0",
		IsActive:     true,
	})
	require.ErrorIs(t, err, domain.ErrSlugExists)
}

func TestAppRepository_SaveClearsRoutingField(t *testing.T) {
	db := testDB(t)
	repo := NewAppRepository(db)
	ctx := context.Background()

	app := createTestApp(t, repo, "switchy", true)

	url := "https://switchy.example.com"
	app.Type = domain.AppTypeExternal
	app.ExternalURL = &url
	app.InternalPath = nil

	saved, err := repo.Save(ctx, app)
	require.NoError(t, err)
	require.Equal(t, domain.AppTypeExternal, saved.Type)
	require.NotNil(t, saved.ExternalURL)
	// The nil routing field must actually be written out, not skipped.
	require.Nil(t, saved.InternalPath)
}

func TestAppRepository_AssignToAdmins(t *testing.T) {
	db := testDB(t)
	apps := NewAppRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	admin1 := createTestUser(t, users, "admin1", domain.RoleAdmin)
	admin2 := createTestUser(t, users, "admin2", domain.RoleAdmin)
	regular := createTestUser(t, users, "plain", domain.RoleUser)

	app := createTestApp(t, apps, "shared", true)
	require.NoError(t, apps.AssignToAdmins(ctx, app.ID))
	// Running twice must not fail on existing pairs.
	require.NoError(t, apps.AssignToAdmins(ctx, app.ID))

	for _, admin := range []uint{admin1.ID, admin2.ID} {
		got, err := users.ActiveAppsForUser(ctx, admin)
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
	got, err := users.ActiveAppsForUser(ctx, regular.ID)
	require.NoError(t, err)
	require.Empty(t, got)
}

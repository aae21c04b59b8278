package postgres

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory SQLite database with the production schema. The
// glebarez driver translates constraint violations to gorm.ErrDuplicatedKey
// the same way the postgres driver does.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One shared connection keeps every query on the same :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

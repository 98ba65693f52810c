// Package testdb opens throwaway in-memory SQLite databases for tests, with
// the full schema migrated and default freshness settings seeded.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	migration "freezer-tracker/cmd/database/migrate"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

package testutil

import (
	"database/sql"
	"testing"

	"github.com/mhennig/kalender/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededTestDB creates a test database populated with the default
// option lists and example theme.
func NewSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	if err := db.Seed(database); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

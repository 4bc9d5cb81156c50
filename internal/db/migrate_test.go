package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_AppliesMigrations(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"list_options", "themes"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestSeed_PopulatesEmptyStore(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Seed(database))

	var statuses int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM list_options WHERE kind = 'status'`,
	).Scan(&statuses))
	assert.Equal(t, 4, statuses)

	var first string
	require.NoError(t, database.QueryRow(
		`SELECT value FROM list_options WHERE kind = 'status' ORDER BY position LIMIT 1`,
	).Scan(&first))
	assert.Equal(t, "in Planung", first, "default status must be first")

	var themes int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM themes`).Scan(&themes))
	assert.Equal(t, 1, themes)
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO list_options (kind, value, position) VALUES ('platform', 'Mastodon', 0)`)
	require.NoError(t, err)

	require.NoError(t, Seed(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM list_options`).Scan(&count))
	assert.Equal(t, 1, count, "seed must not touch a populated store")
}

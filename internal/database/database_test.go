package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	t.Run("creates the cache tables via migrations", func(t *testing.T) {
		db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
		require.NoError(t, err)
		defer teardown()

		for _, table := range []string{"cached_players", "cached_matches"} {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			require.NoError(t, err, "expected table %s to exist", table)
			assert.Equal(t, table, name)
		}
	})

	t.Run("migrations are idempotent on an existing database", func(t *testing.T) {
		dbPath := t.TempDir() + "/cache.db"

		db, teardown, err := InitDB(dbPath, "", "", "../../migrations")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO cached_players (id, name, display_name, elo, created_at, main_character) VALUES (1, 'kai', NULL, 1900, 0, NULL)")
		require.NoError(t, err)
		teardown()

		db, teardown, err = InitDB(dbPath, "", "", "../../migrations")
		require.NoError(t, err)
		defer teardown()

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cached_players").Scan(&count))
		assert.Equal(t, 1, count, "re-running migrations must not wipe data")
	})

	t.Run("missing migrations directory is an error", func(t *testing.T) {
		_, _, err := InitDB(":memory:", "", "", "./does-not-exist")
		require.Error(t, err)
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_NAME", "smash.db")
	t.Setenv("PORT", "8080")
	t.Setenv("SMASH_API_URL", "http://localhost:9000")
}

func TestLoad(t *testing.T) {
	t.Run("reads required variables and applies defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg := Load()

		assert.Equal(t, "smash.db", cfg.DBName)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "http://localhost:9000", cfg.SmashAPI.BaseURL)
		assert.Equal(t, "./migrations", cfg.MigrationsDir)
		assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
		assert.Empty(t, cfg.Slack.Token)
		assert.Empty(t, cfg.Turso.PrimaryURL)
	})

	t.Run("honors an explicit refresh interval", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REFRESH_INTERVAL_SECONDS", "10")

		cfg := Load()

		assert.Equal(t, 10*time.Second, cfg.RefreshInterval)
	})

	t.Run("falls back on a bogus refresh interval", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REFRESH_INTERVAL_SECONDS", "not-a-number")

		cfg := Load()

		assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	})

	t.Run("zero or negative intervals fall back too", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REFRESH_INTERVAL_SECONDS", "0")

		cfg := Load()

		assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	})
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	// Optional env var with a fallback.
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	refreshSeconds, err := strconv.Atoi(getEnvOr("REFRESH_INTERVAL_SECONDS", "30"))
	if err != nil || refreshSeconds <= 0 {
		log.Warn("Invalid REFRESH_INTERVAL_SECONDS, falling back to 30s", "value", os.Getenv("REFRESH_INTERVAL_SECONDS"))
		refreshSeconds = 30
	}

	cfg := Config{
		DBName:          getEnv("DB_NAME"),
		MigrationsDir:   getEnvOr("MIGRATIONS_DIR", "./migrations"),
		Port:            getEnv("PORT"),
		RefreshInterval: time.Duration(refreshSeconds) * time.Second,
		SmashAPI: SmashAPIConfig{
			BaseURL: getEnv("SMASH_API_URL"),
		},
		Slack: SlackConfig{
			Token:     getEnvOr("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvOr("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
	}
	return cfg
}

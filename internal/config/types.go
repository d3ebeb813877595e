package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	MigrationsDir   string
	Port            string
	RefreshInterval time.Duration
	SmashAPI        SmashAPIConfig
	Slack           SlackConfig
	Turso           TursoConfig
}

// SmashAPIConfig points at the external data service that stores the
// players, matches and match participants we render.
type SmashAPIConfig struct {
	BaseURL string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

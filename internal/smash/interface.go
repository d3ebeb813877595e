package smash

import "context"

// Client defines the interface for fetching leaderboard data from the
// external smash data service.
type Client interface {
	GetPlayers(ctx context.Context) ([]Player, error)
	GetMatches(ctx context.Context) ([]Match, error)
}

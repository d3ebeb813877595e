package notifier

import "github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"

// Notifier defines a high-level interface for announcing leaderboard events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// SendTopPlayerChange announces that a new player holds rank 1.
	SendTopPlayerChange(previous, current stats.DerivedPlayer, dryRun bool) error
	// SendLeaderboard posts the current ranked standings.
	SendLeaderboard(ranked []stats.DerivedPlayer, dryRun bool) error
	// FormatLeaderboardResponse formats the standings for a slash command response.
	FormatLeaderboardResponse(ranked []stats.DerivedPlayer) (any, error)
}

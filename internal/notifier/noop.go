package notifier

import (
	"github.com/charmbracelet/log"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
)

// noop is used when no notification provider is configured.
type noop struct{}

// NewNoop returns a Notifier that logs and discards everything.
func NewNoop() Notifier {
	return noop{}
}

func (noop) SendTopPlayerChange(previous, current stats.DerivedPlayer, dryRun bool) error {
	log.Debug("No notifier configured, skipping top player announcement", "player", current.ShownName())
	return nil
}

func (noop) SendLeaderboard(ranked []stats.DerivedPlayer, dryRun bool) error {
	return nil
}

func (noop) FormatLeaderboardResponse(ranked []stats.DerivedPlayer) (any, error) {
	return nil, nil
}

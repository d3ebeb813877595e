package stats

import (
	"fmt"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

// DerivedPlayer is a player with its aggregate counters rolled up. It is
// ephemeral: every refresh rebuilds the full set from the raw roster, so no
// field is ever stale relative to another on the same player.
type DerivedPlayer struct {
	smash.Player

	Matches int     `json:"matches"`
	WinRate float64 `json:"win_rate"`
	KDRatio float64 `json:"kd_ratio"`

	// Filled in by the leaderboard view.
	Tier tier.Tier `json:"tier,omitempty"`
	Rank int       `json:"rank,omitempty"`
}

// AttachDerived rolls up a single player's lifetime counters. Missing
// counters count as zero; a zero denominator yields a zero ratio, never NaN.
func AttachDerived(p smash.Player) DerivedPlayer {
	wins := intOrZero(p.TotalWins)
	losses := intOrZero(p.TotalLosses)
	kos := intOrZero(p.TotalKOs)
	falls := intOrZero(p.TotalFalls)
	sds := intOrZero(p.TotalSDs)

	d := DerivedPlayer{
		Player:  p,
		Matches: wins + losses,
	}
	if wins+losses > 0 {
		d.WinRate = float64(wins) / float64(wins+losses)
	}
	if kos > 0 && falls+sds > 0 {
		d.KDRatio = float64(kos) / float64(falls+sds)
	}
	return d
}

// AttachDerivedAll maps AttachDerived over a roster.
func AttachDerivedAll(players []smash.Player) []DerivedPlayer {
	derived := make([]DerivedPlayer, 0, len(players))
	for _, p := range players {
		derived = append(derived, AttachDerived(p))
	}
	return derived
}

// FormatWinRate renders a win rate fraction as a percentage with one decimal.
func FormatWinRate(winRate float64) string {
	return fmt.Sprintf("%.1f%%", winRate*100)
}

// FormatKD renders a K/D ratio with two decimals.
func FormatKD(kd float64) string {
	return fmt.Sprintf("%.2f", kd)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

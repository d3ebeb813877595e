package tier

import (
	"sort"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

// Tier is a discrete skill bracket derived from a player's ELO percentile
// position within the current population. S is the best, E the catch-all.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
	TierE Tier = "E"
)

// Order is the fixed high-to-low iteration order for tiers.
var Order = []Tier{TierS, TierA, TierB, TierC, TierD, TierE}

// Thresholds maps each tier to its minimum-inclusive ELO cutoff. E has no
// cutoff; it catches everything below D. Thresholds are recomputed from the
// live population on every refresh and never persisted.
type Thresholds struct {
	S int `json:"S"`
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
}

// DefaultThresholds is the fixed fallback used when there are no rated
// players, so the UI always has a stable threshold set to render.
func DefaultThresholds() Thresholds {
	return Thresholds{S: 2000, A: 1800, B: 1600, C: 1400, D: 1200}
}

// Population fractions at which each tier starts. S starts at the top
// player, so the best player is always tier S.
const (
	fracA = 0.15
	fracB = 0.30
	fracC = 0.50
	fracD = 0.75
)

// ComputeThresholds derives the tier cutoffs from the full rated population.
// Cutoffs are index-based percentiles (the ELO of the player at
// floor(frac*N) in descending rating order), not interpolated values.
func ComputeThresholds(players []smash.Player) Thresholds {
	if len(players) == 0 {
		return DefaultThresholds()
	}

	sorted := make([]smash.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Elo > sorted[j].Elo
	})

	eloAt := func(frac float64) int {
		idx := int(frac * float64(len(sorted)))
		if idx > len(sorted)-1 {
			idx = len(sorted) - 1
		}
		return sorted[idx].Elo
	}

	return Thresholds{
		S: sorted[0].Elo,
		A: eloAt(fracA),
		B: eloAt(fracB),
		C: eloAt(fracC),
		D: eloAt(fracD),
	}
}

// Classify returns the highest tier whose cutoff the given ELO meets.
// It is a pure function of the rating and the current thresholds.
func Classify(elo int, t Thresholds) Tier {
	switch {
	case elo >= t.S:
		return TierS
	case elo >= t.A:
		return TierA
	case elo >= t.B:
		return TierB
	case elo >= t.C:
		return TierC
	case elo >= t.D:
		return TierD
	default:
		return TierE
	}
}

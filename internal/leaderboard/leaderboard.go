package leaderboard

import (
	"sort"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

// Rank orders players by ELO descending (stable) and stamps each with its
// 1-based position and tier. The input slice is not modified; rank is a view
// over the current snapshot, never a stored field.
func Rank(players []stats.DerivedPlayer, thresholds tier.Thresholds) []stats.DerivedPlayer {
	ranked := make([]stats.DerivedPlayer, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Elo > ranked[j].Elo
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Tier = tier.Classify(ranked[i].Elo, thresholds)
	}
	return ranked
}

// BucketByTier partitions an already-ranked sequence into per-tier buckets.
// Buckets keep insertion order, so within a tier players stay
// rating-descending. Every tier is present in the map, empty or not.
func BucketByTier(ranked []stats.DerivedPlayer, thresholds tier.Thresholds) map[tier.Tier][]stats.DerivedPlayer {
	buckets := make(map[tier.Tier][]stats.DerivedPlayer, len(tier.Order))
	for _, t := range tier.Order {
		buckets[t] = []stats.DerivedPlayer{}
	}
	for _, p := range ranked {
		t := tier.Classify(p.Elo, thresholds)
		buckets[t] = append(buckets[t], p)
	}
	return buckets
}

// WinnersFirst orders a match's participants winners-before-losers while
// preserving the original order within each group. A stable partition, not a
// full comparator: multi-winner rows from upstream stay deterministic and
// are deliberately not "fixed" here.
func WinnersFirst(participants []smash.Participant) []smash.Participant {
	ordered := make([]smash.Participant, 0, len(participants))
	for _, p := range participants {
		if p.HasWon {
			ordered = append(ordered, p)
		}
	}
	for _, p := range participants {
		if !p.HasWon {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

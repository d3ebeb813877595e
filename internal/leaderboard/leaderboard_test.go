package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

func derivedWithElo(id int64, elo int) stats.DerivedPlayer {
	return stats.DerivedPlayer{Player: smash.Player{ID: id, Elo: elo}}
}

func TestRank(t *testing.T) {
	thresholds := tier.Thresholds{S: 1900, A: 1800, B: 1600, C: 1400, D: 1200}

	t.Run("orders by ELO descending with 1-based ranks", func(t *testing.T) {
		ranked := Rank([]stats.DerivedPlayer{
			derivedWithElo(1, 1500),
			derivedWithElo(2, 1900),
			derivedWithElo(3, 1700),
		}, thresholds)

		require.Len(t, ranked, 3)
		assert.Equal(t, int64(2), ranked[0].ID)
		assert.Equal(t, int64(3), ranked[1].ID)
		assert.Equal(t, int64(1), ranked[2].ID)
		for i, p := range ranked {
			assert.Equal(t, i+1, p.Rank)
		}
	})

	t.Run("equal ratings keep input order", func(t *testing.T) {
		ranked := Rank([]stats.DerivedPlayer{
			derivedWithElo(1, 1500),
			derivedWithElo(2, 1500),
			derivedWithElo(3, 1500),
		}, thresholds)

		assert.Equal(t, int64(1), ranked[0].ID)
		assert.Equal(t, int64(2), ranked[1].ID)
		assert.Equal(t, int64(3), ranked[2].ID)
	})

	t.Run("stamps the tier on each player", func(t *testing.T) {
		ranked := Rank([]stats.DerivedPlayer{
			derivedWithElo(1, 1900),
			derivedWithElo(2, 1650),
			derivedWithElo(3, 900),
		}, thresholds)

		assert.Equal(t, tier.TierS, ranked[0].Tier)
		assert.Equal(t, tier.TierB, ranked[1].Tier)
		assert.Equal(t, tier.TierE, ranked[2].Tier)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		players := []stats.DerivedPlayer{
			derivedWithElo(1, 1500),
			derivedWithElo(2, 1900),
		}
		Rank(players, thresholds)

		assert.Equal(t, int64(1), players[0].ID)
		assert.Equal(t, 0, players[0].Rank)
	})
}

func TestBucketByTier(t *testing.T) {
	thresholds := tier.Thresholds{S: 1900, A: 1800, B: 1600, C: 1400, D: 1200}

	t.Run("every tier is present even when empty", func(t *testing.T) {
		buckets := BucketByTier(nil, thresholds)

		require.Len(t, buckets, len(tier.Order))
		for _, tr := range tier.Order {
			bucket, ok := buckets[tr]
			assert.True(t, ok)
			assert.Empty(t, bucket)
		}
	})

	t.Run("buckets are exhaustive and disjoint", func(t *testing.T) {
		ranked := Rank([]stats.DerivedPlayer{
			derivedWithElo(1, 1950),
			derivedWithElo(2, 1820),
			derivedWithElo(3, 1700),
			derivedWithElo(4, 1450),
			derivedWithElo(5, 1250),
			derivedWithElo(6, 800),
		}, thresholds)
		buckets := BucketByTier(ranked, thresholds)

		seen := map[int64]int{}
		total := 0
		for _, bucket := range buckets {
			for _, p := range bucket {
				seen[p.ID]++
				total++
			}
		}
		assert.Equal(t, len(ranked), total)
		for id, count := range seen {
			assert.Equal(t, 1, count, "player %d appears in more than one bucket", id)
		}
	})

	t.Run("players stay rating-descending within a bucket", func(t *testing.T) {
		ranked := Rank([]stats.DerivedPlayer{
			derivedWithElo(1, 1610),
			derivedWithElo(2, 1790),
			derivedWithElo(3, 1700),
		}, thresholds)
		buckets := BucketByTier(ranked, thresholds)

		b := buckets[tier.TierB]
		require.Len(t, b, 3)
		assert.Equal(t, int64(2), b[0].ID)
		assert.Equal(t, int64(3), b[1].ID)
		assert.Equal(t, int64(1), b[2].ID)
	})
}

func TestWinnersFirst(t *testing.T) {
	t.Run("winners move ahead of losers, order preserved within groups", func(t *testing.T) {
		ordered := WinnersFirst([]smash.Participant{
			{ID: 1, HasWon: false},
			{ID: 2, HasWon: true},
			{ID: 3, HasWon: false},
		})

		require.Len(t, ordered, 3)
		assert.Equal(t, int64(2), ordered[0].ID)
		assert.Equal(t, int64(1), ordered[1].ID)
		assert.Equal(t, int64(3), ordered[2].ID)
	})

	t.Run("multiple winners keep their relative order", func(t *testing.T) {
		ordered := WinnersFirst([]smash.Participant{
			{ID: 1, HasWon: true},
			{ID: 2, HasWon: false},
			{ID: 3, HasWon: true},
		})

		assert.Equal(t, int64(1), ordered[0].ID)
		assert.Equal(t, int64(3), ordered[1].ID)
		assert.Equal(t, int64(2), ordered[2].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, WinnersFirst(nil))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		participants := []smash.Participant{
			{ID: 1, HasWon: false},
			{ID: 2, HasWon: true},
		}
		WinnersFirst(participants)

		assert.Equal(t, int64(1), participants[0].ID)
	})
}

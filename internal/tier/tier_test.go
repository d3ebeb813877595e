package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

func rosterWithElos(elos ...int) []smash.Player {
	players := make([]smash.Player, 0, len(elos))
	for i, elo := range elos {
		players = append(players, smash.Player{ID: int64(i + 1), Name: "player", Elo: elo})
	}
	return players
}

func TestComputeThresholds(t *testing.T) {
	t.Run("empty population falls back to defaults", func(t *testing.T) {
		assert.Equal(t, DefaultThresholds(), ComputeThresholds(nil))
		assert.Equal(t, DefaultThresholds(), ComputeThresholds([]smash.Player{}))
	})

	t.Run("single player anchors every cutoff", func(t *testing.T) {
		got := ComputeThresholds(rosterWithElos(1500))
		assert.Equal(t, Thresholds{S: 1500, A: 1500, B: 1500, C: 1500, D: 1500}, got)
		assert.Equal(t, TierS, Classify(1500, got))
	})

	t.Run("ten players use index-based cutoffs", func(t *testing.T) {
		// Descending: 1900, 1800, ..., 1000. Cutoff indexes are
		// floor(frac*10): A at index 1, B at 3, C at 5, D at 7.
		got := ComputeThresholds(rosterWithElos(1900, 1800, 1700, 1600, 1500, 1400, 1300, 1200, 1100, 1000))
		assert.Equal(t, Thresholds{S: 1900, A: 1800, B: 1600, C: 1400, D: 1200}, got)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		ascending := ComputeThresholds(rosterWithElos(1000, 1100, 1200, 1300, 1400, 1500, 1600, 1700, 1800, 1900))
		descending := ComputeThresholds(rosterWithElos(1900, 1800, 1700, 1600, 1500, 1400, 1300, 1200, 1100, 1000))
		assert.Equal(t, descending, ascending)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		players := rosterWithElos(1000, 1900, 1500)
		ComputeThresholds(players)
		assert.Equal(t, 1000, players[0].Elo)
		assert.Equal(t, 1900, players[1].Elo)
		assert.Equal(t, 1500, players[2].Elo)
	})

	t.Run("cutoffs are monotonically non-increasing", func(t *testing.T) {
		got := ComputeThresholds(rosterWithElos(2210, 1730, 990, 1410, 1850, 1220, 2040, 1560))
		assert.GreaterOrEqual(t, got.S, got.A)
		assert.GreaterOrEqual(t, got.A, got.B)
		assert.GreaterOrEqual(t, got.B, got.C)
		assert.GreaterOrEqual(t, got.C, got.D)
	})
}

func TestClassify(t *testing.T) {
	thresholds := Thresholds{S: 1900, A: 1800, B: 1600, C: 1400, D: 1200}

	tests := []struct {
		name string
		elo  int
		want Tier
	}{
		{"at the S cutoff", 1900, TierS},
		{"above the S cutoff", 2500, TierS},
		{"at the A cutoff", 1800, TierA},
		{"just below the S cutoff", 1899, TierA},
		{"between B and A", 1700, TierB},
		{"at the C cutoff", 1400, TierC},
		{"at the D cutoff", 1200, TierD},
		{"below every cutoff", 1000, TierE},
		{"zero rating", 0, TierE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.elo, thresholds))
		})
	}
}

func TestOrderIsHighToLow(t *testing.T) {
	assert.Equal(t, []Tier{TierS, TierA, TierB, TierC, TierD, TierE}, Order)
}

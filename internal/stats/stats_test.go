package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

func intPtr(v int) *int { return &v }

func TestAttachDerived(t *testing.T) {
	t.Run("computes rollup from full counters", func(t *testing.T) {
		d := AttachDerived(smash.Player{
			ID:          1,
			Name:        "kai",
			Elo:         1900,
			TotalWins:   intPtr(30),
			TotalLosses: intPtr(10),
			TotalKOs:    intPtr(90),
			TotalFalls:  intPtr(40),
			TotalSDs:    intPtr(5),
		})

		assert.Equal(t, 40, d.Matches)
		assert.Equal(t, 0.75, d.WinRate)
		assert.Equal(t, 2.0, d.KDRatio)
	})

	t.Run("nil counters count as zero", func(t *testing.T) {
		d := AttachDerived(smash.Player{ID: 2, Name: "mira", Elo: 1500})

		assert.Equal(t, 0, d.Matches)
		assert.Equal(t, 0.0, d.WinRate)
		assert.Equal(t, 0.0, d.KDRatio)
	})

	t.Run("zero denominators never produce NaN", func(t *testing.T) {
		// KOs without any falls or SDs would divide by zero.
		d := AttachDerived(smash.Player{
			ID:       3,
			Name:     "dex",
			TotalKOs: intPtr(12),
		})

		assert.False(t, math.IsNaN(d.WinRate))
		assert.False(t, math.IsNaN(d.KDRatio))
		assert.False(t, math.IsInf(d.KDRatio, 1))
		assert.Equal(t, 0.0, d.KDRatio)
	})

	t.Run("all losses gives zero win rate", func(t *testing.T) {
		d := AttachDerived(smash.Player{
			ID:          4,
			Name:        "juno",
			TotalLosses: intPtr(7),
		})

		assert.Equal(t, 7, d.Matches)
		assert.Equal(t, 0.0, d.WinRate)
	})

	t.Run("carries the raw player through", func(t *testing.T) {
		display := "Kai"
		d := AttachDerived(smash.Player{ID: 1, Name: "kai", DisplayName: &display, Elo: 1900})

		assert.Equal(t, int64(1), d.ID)
		assert.Equal(t, 1900, d.Elo)
		assert.Equal(t, "Kai", d.ShownName())
	})
}

func TestAttachDerivedAll(t *testing.T) {
	players := []smash.Player{
		{ID: 1, TotalWins: intPtr(3), TotalLosses: intPtr(1)},
		{ID: 2},
	}

	derived := AttachDerivedAll(players)

	assert.Len(t, derived, 2)
	assert.Equal(t, 4, derived[0].Matches)
	assert.Equal(t, 0, derived[1].Matches)

	assert.Empty(t, AttachDerivedAll(nil))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "75.0%", FormatWinRate(0.75))
	assert.Equal(t, "33.3%", FormatWinRate(1.0/3.0))
	assert.Equal(t, "0.0%", FormatWinRate(0))
	assert.Equal(t, "2.25", FormatKD(2.25))
	assert.Equal(t, "0.00", FormatKD(0))
}

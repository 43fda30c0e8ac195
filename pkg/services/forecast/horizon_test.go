package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

func TestHorizons(t *testing.T) {
	t.Run("success - cumulative sums per horizon", func(t *testing.T) {
		series := flatSeries(0)
		series[0].Cost = 100  // year 1
		series[5].Cost = 200  // year 6
		series[10].Cost = 300 // year 11

		totals, maxHorizon, maxYearly := Horizons(series)

		require.Len(t, totals, 3)
		assert.Equal(t, domain.HorizonTotal{Year: 5, Total: 100}, totals[0])
		assert.Equal(t, domain.HorizonTotal{Year: 10, Total: 300}, totals[1])
		assert.Equal(t, domain.HorizonTotal{Year: 15, Total: 600}, totals[2])
		assert.Equal(t, 600.0, maxHorizon)
		assert.Equal(t, 300.0, maxYearly)
	})

	t.Run("success - totals are non-decreasing", func(t *testing.T) {
		for severity := 1; severity <= 5; severity++ {
			totals, _, _ := Horizons(SyntheticSeries("Sagging roof", severity))
			assert.LessOrEqual(t, totals[0].Total, totals[1].Total)
			assert.LessOrEqual(t, totals[1].Total, totals[2].Total)
		}
	})

	t.Run("success - denominators floored at 1 on an empty series", func(t *testing.T) {
		totals, maxHorizon, maxYearly := Horizons(flatSeries(0))

		for _, total := range totals {
			assert.Equal(t, 0.0, total.Total)
		}
		assert.Equal(t, 1.0, maxHorizon)
		assert.Equal(t, 1.0, maxYearly)
	})
}

func TestHorizons_FullSeriesTotal(t *testing.T) {
	// End-to-end: with no authoritative data the 15-year horizon equals
	// the rounded sum of the whole synthetic series.
	series := SyntheticSeries("Roof leak", 4)

	var sum float64
	for _, row := range series {
		sum += row.Cost
	}

	totals, _, _ := Horizons(series)
	assert.Equal(t, math.Round(sum), totals[2].Total)
	assert.Greater(t, totals[2].Total, 0.0)
}

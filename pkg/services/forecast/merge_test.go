package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

func flatSeries(cost float64) []domain.YearlyCost {
	series := make([]domain.YearlyCost, 0, domain.ProjectionYears)
	for year := 1; year <= domain.ProjectionYears; year++ {
		work := WorkNone
		if cost > 0 {
			work = WorkCondition
		}
		series = append(series, domain.YearlyCost{Year: year, Cost: cost, ScheduledWork: work})
	}
	return series
}

func TestMergeSeries(t *testing.T) {
	t.Run("success - authoritative zero never overrides synthetic", func(t *testing.T) {
		synthetic := flatSeries(500)
		authoritative := []domain.YearlyCost{{Year: 5, Cost: 0, ScheduledWork: "none"}}

		merged := MergeSeries(synthetic, authoritative)

		assert.Equal(t, 500.0, merged[4].Cost)
		assert.Equal(t, WorkCondition, merged[4].ScheduledWork)
	})

	t.Run("success - positive authoritative row wins", func(t *testing.T) {
		synthetic := flatSeries(500)
		authoritative := []domain.YearlyCost{{Year: 5, Cost: 900, ScheduledWork: "Replace unit"}}

		merged := MergeSeries(synthetic, authoritative)

		assert.Equal(t, 900.0, merged[4].Cost)
		assert.Equal(t, "Replace unit", merged[4].ScheduledWork)

		// Other years untouched.
		assert.Equal(t, 500.0, merged[3].Cost)
		assert.Equal(t, 500.0, merged[5].Cost)
	})

	t.Run("success - year set is preserved", func(t *testing.T) {
		merged := MergeSeries(flatSeries(0), []domain.YearlyCost{
			{Year: 2, Cost: 100},
			{Year: 20, Cost: 999},
		})

		require.Len(t, merged, domain.ProjectionYears)
		for i, row := range merged {
			assert.Equal(t, i+1, row.Year)
		}
		assert.Equal(t, 100.0, merged[1].Cost)
	})

	t.Run("success - authoritative costs are rounded to the unit", func(t *testing.T) {
		merged := MergeSeries(flatSeries(0), []domain.YearlyCost{{Year: 3, Cost: 899.6}})
		assert.Equal(t, 900.0, merged[2].Cost)
	})

	t.Run("success - empty authoritative keeps synthetic", func(t *testing.T) {
		synthetic := flatSeries(250)
		assert.Equal(t, synthetic, MergeSeries(synthetic, nil))
	})
}

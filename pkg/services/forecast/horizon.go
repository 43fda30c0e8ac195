package forecast

import (
	"math"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

// Horizons reduces a yearly series into cumulative totals at the fixed
// horizon years. Totals are non-decreasing because costs are
// non-negative. The returned maxima are normalization denominators for
// the rendering layer and are floored at 1 so they are always safe to
// divide by.
func Horizons(series []domain.YearlyCost) (totals []domain.HorizonTotal, maxHorizon, maxYearly float64) {
	maxHorizon, maxYearly = 1, 1

	totals = make([]domain.HorizonTotal, 0, len(domain.HorizonYears))
	for _, horizon := range domain.HorizonYears {
		var sum float64
		for _, row := range series {
			if row.Year <= horizon {
				sum += row.Cost
			}
		}
		sum = math.Round(sum)
		if sum > maxHorizon {
			maxHorizon = sum
		}
		totals = append(totals, domain.HorizonTotal{Year: horizon, Total: sum})
	}

	for _, row := range series {
		if row.Cost > maxYearly {
			maxYearly = row.Cost
		}
	}

	return totals, maxHorizon, maxYearly
}

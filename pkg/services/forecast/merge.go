package forecast

import (
	"math"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

// MergeSeries overlays authoritative yearly rows onto the synthetic
// baseline. An authoritative row wins only when its cost is strictly
// positive; zero or missing backend data keeps the synthetic
// placeholder so the series never shows a false "no cost" signal.
// The result always covers the same years as the synthetic input.
func MergeSeries(synthetic, authoritative []domain.YearlyCost) []domain.YearlyCost {
	overlay := make(map[int]domain.YearlyCost, len(authoritative))
	for _, row := range authoritative {
		if row.Cost > 0 {
			overlay[row.Year] = row
		}
	}

	merged := make([]domain.YearlyCost, len(synthetic))
	copy(merged, synthetic)
	for i := range merged {
		row, ok := overlay[merged[i].Year]
		if !ok {
			continue
		}
		merged[i].Cost = math.Round(row.Cost)
		merged[i].ScheduledWork = row.ScheduledWork
	}

	return merged
}

package portfolio

import (
	"sort"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

// topSystemCount caps the cost-driver ranking.
const topSystemCount = 3

// Aggregate combines every profile across every processed photo into
// the portfolio report: summed horizon totals plus the top cost
// drivers grouped by label. Returns nil when no photos were processed.
func Aggregate(photos []domain.ProcessedPhoto) *domain.PortfolioReport {
	if len(photos) == 0 {
		return nil
	}

	totals := make([]domain.HorizonTotal, len(domain.HorizonYears))
	for i, year := range domain.HorizonYears {
		totals[i] = domain.HorizonTotal{Year: year}
	}

	sums := make(map[string]float64)
	var order []string

	for _, photo := range photos {
		for _, p := range photo.CostProfiles {
			for i := range totals {
				totals[i].Total += horizonTotal(p, totals[i].Year)
			}

			if _, seen := sums[p.Label]; !seen {
				order = append(order, p.Label)
			}
			sums[p.Label] += horizonTotal(p, domain.ProjectionYears)
		}
	}

	systems := make([]domain.SystemValue, 0, len(order))
	for _, label := range order {
		systems = append(systems, domain.SystemValue{Label: label, Value: sums[label]})
	}
	// Stable sort: ties keep first-seen order.
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Value > systems[j].Value
	})
	if len(systems) > topSystemCount {
		systems = systems[:topSystemCount]
	}

	return &domain.PortfolioReport{
		Totals:     totals,
		TopSystems: systems,
	}
}

func horizonTotal(p domain.CostProfile, year int) float64 {
	for _, h := range p.Horizons {
		if h.Year == year {
			return h.Total
		}
	}
	return 0
}

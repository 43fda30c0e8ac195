package portfolio

import (
	"math"
	"sort"
	"strings"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

// HorizonDrillDown recomputes the yearly and per-system breakdown for a
// selected horizon year from the current photo snapshot. The
// distribution lists each system's cumulative cost through the horizon,
// descending, and only while that cumulative cost is positive.
func HorizonDrillDown(photos []domain.ProcessedPhoto, horizonYear int) domain.HorizonDrillDown {
	yearly := make([]domain.YearBreakdown, 0, horizonYear)
	for year := 1; year <= horizonYear; year++ {
		yearly = append(yearly, domain.YearBreakdown{
			Year:    year,
			Systems: make(map[string]float64),
		})
	}

	cumulative := make(map[string]float64)
	var order []string

	for _, photo := range photos {
		for _, p := range photo.CostProfiles {
			if _, seen := cumulative[p.Label]; !seen {
				order = append(order, p.Label)
			}
			for _, row := range p.YearlySeries {
				if row.Year > horizonYear {
					continue
				}
				b := &yearly[row.Year-1]
				b.Total += row.Cost
				b.Systems[p.Label] += row.Cost
				cumulative[p.Label] += row.Cost
			}
		}
	}

	distribution := make([]domain.SystemValue, 0, len(order))
	for _, label := range order {
		if cumulative[label] > 0 {
			distribution = append(distribution, domain.SystemValue{
				Label: label,
				Value: cumulative[label],
			})
		}
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Value > distribution[j].Value
	})

	return domain.HorizonDrillDown{
		Year:         horizonYear,
		Yearly:       yearly,
		Distribution: distribution,
	}
}

// SystemDrillDown collects every (photo, profile) instance of the
// selected system label and breaks its costs down per year, keeping
// the contributing instances for tooltip detail. Returns nil when no
// profile matches the label.
func SystemDrillDown(photos []domain.ProcessedPhoto, label string) *domain.SystemDrillDown {
	yearly := make([]domain.YearInstances, domain.ProjectionYears)
	for i := range yearly {
		yearly[i].Year = i + 1
	}

	var (
		totalCost     float64
		severitySum   int
		instanceCount int
	)

	for _, photo := range photos {
		for _, p := range photo.CostProfiles {
			if !strings.EqualFold(p.Label, label) {
				continue
			}
			instanceCount++
			severitySum += p.Severity
			totalCost += horizonTotal(p, domain.ProjectionYears)

			for _, row := range p.YearlySeries {
				if row.Year < 1 || row.Year > domain.ProjectionYears {
					continue
				}
				y := &yearly[row.Year-1]
				y.Total += row.Cost
				if row.Cost > 0 {
					y.Instances = append(y.Instances, domain.InstanceCost{
						Photo:         photo.FileName,
						Cost:          row.Cost,
						ScheduledWork: row.ScheduledWork,
					})
				}
			}
		}
	}

	if instanceCount == 0 {
		return nil
	}

	return &domain.SystemDrillDown{
		Label:           label,
		TotalCost:       totalCost,
		AverageSeverity: int(math.Round(float64(severitySum) / float64(instanceCount))),
		InstanceCount:   instanceCount,
		Yearly:          yearly,
	}
}

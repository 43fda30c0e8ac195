package pricing

import (
	"fmt"
	"math"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/models/store"
)

const (
	// inflationRate tracks construction-cost inflation applied to
	// scheduled events year over year.
	inflationRate = 0.045
	// contingencyBuffer covers unforeseen costs on every scheduled
	// event.
	contingencyBuffer = 0.20

	inspectionCost = 250
)

// scheduledEvent is one planned intervention inside the projection
// window.
type scheduledEvent struct {
	year int
	kind string
	cost float64
}

// BuildAnalysis turns a catalog entry and a damage severity into the
// authoritative cost analysis for that item: a severity-driven repair
// schedule projected over 15 years with inflation and a contingency
// buffer applied to every event.
func BuildAnalysis(entry store.CatalogEntry, item domain.DamageItem) domain.Analysis {
	severity := domain.ClampSeverity(item.Severity)
	events := scheduleEvents(entry, severity)

	costs := make(map[int]scheduledEvent, len(events))
	for _, event := range events {
		if event.year < 1 || event.year > domain.ProjectionYears {
			continue
		}
		if existing, ok := costs[event.year]; ok {
			existing.cost += event.cost
			existing.kind = existing.kind + " + " + event.kind
			costs[event.year] = existing
			continue
		}
		costs[event.year] = event
	}

	var (
		yearly     []domain.YearlyCost
		eventCount int
	)
	for year := 1; year <= domain.ProjectionYears; year++ {
		event, ok := costs[year]
		if !ok {
			continue
		}
		buffered := event.cost * (1 + contingencyBuffer)
		inflated := buffered * math.Pow(1+inflationRate, float64(year-1))
		yearly = append(yearly, domain.YearlyCost{
			Year:          year,
			Cost:          math.Round(inflated),
			ScheduledWork: event.kind,
		})
		eventCount++
	}

	summary := fmt.Sprintf(
		"Total of %d maintenance/repair event(s) scheduled over %d years. "+
			"Costs include %.1f%% annual inflation and %.0f%% contingency buffer.",
		eventCount, domain.ProjectionYears, inflationRate*100, contingencyBuffer*100,
	)

	return domain.Analysis{
		DamageItem:  item.Label,
		Severity:    severity,
		Category:    entry.Category,
		YearlyCosts: yearly,
		Summary:     summary,
	}
}

// scheduleEvents maps severity to a repair plan: urgency year, cost
// multiplier and follow-up work. Higher severity means earlier, more
// expensive interventions.
func scheduleEvents(entry store.CatalogEntry, severity int) []scheduledEvent {
	base := entry.Price

	switch severity {
	case 5:
		return []scheduledEvent{
			{year: 1, kind: "Emergency repair", cost: base * 2.0},
			{year: 3, kind: "Inspection", cost: inspectionCost},
			{year: 5, kind: "Follow-up repair", cost: base * 0.4},
		}
	case 4:
		return []scheduledEvent{
			{year: 2, kind: "Major repair", cost: base * 1.6},
			{year: 5, kind: "Inspection", cost: inspectionCost},
		}
	case 3:
		return []scheduledEvent{
			{year: 3, kind: "Repair", cost: base * 1.2},
			{year: 7, kind: "Inspection", cost: inspectionCost},
		}
	default:
		// Minor damage follows the component's normal replacement
		// schedule, with routine maintenance every fourth year.
		events := []scheduledEvent{}
		if entry.LifespanYears >= 1 && entry.LifespanYears <= domain.ProjectionYears {
			events = append(events, scheduledEvent{
				year: entry.LifespanYears,
				kind: "Replacement",
				cost: base * 1.1,
			})
		}
		for year := 4; year <= domain.ProjectionYears; year += 4 {
			if year != entry.LifespanYears {
				events = append(events, scheduledEvent{
					year: year,
					kind: "Maintenance",
					cost: base * 0.12,
				})
			}
		}
		return events
	}
}

package profile

import (
	"strings"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/services/forecast"
)

const (
	// CategoryMatched is used when an authoritative analysis matched
	// the item but carried no category of its own.
	CategoryMatched = "General system"
	// CategorySynthetic is used for profiles built purely from
	// synthetic data.
	CategorySynthetic = "Building component"

	DefaultSummary = "No major maintenance expected."
)

// Build assembles the complete cost profile for one damage item. The
// authoritative analysis is matched by case-insensitive label equality;
// no match is not an error, the profile is produced from purely
// synthetic data.
func Build(item domain.DamageItem, analyses []domain.Analysis) domain.CostProfile {
	analysis, matched := indexAnalyses(analyses)[normalizeLabel(item.Label)]
	return build(item, analysis, matched)
}

// BuildAll builds one profile per item against a shared analysis index,
// preserving item order.
func BuildAll(items []domain.DamageItem, analyses []domain.Analysis) []domain.CostProfile {
	index := indexAnalyses(analyses)

	profiles := make([]domain.CostProfile, 0, len(items))
	for _, item := range items {
		analysis, matched := index[normalizeLabel(item.Label)]
		profiles = append(profiles, build(item, analysis, matched))
	}
	return profiles
}

func build(item domain.DamageItem, analysis domain.Analysis, matched bool) domain.CostProfile {
	severity := domain.ClampSeverity(item.Severity)

	synthetic := forecast.SyntheticSeries(item.Label, severity)

	var authoritative []domain.YearlyCost
	if matched {
		authoritative = analysis.YearlyCosts
	}
	series := forecast.MergeSeries(synthetic, authoritative)
	horizons, maxHorizon, maxYearly := forecast.Horizons(series)

	category := CategorySynthetic
	summary := DefaultSummary
	if matched {
		category = CategoryMatched
		if analysis.Category != "" {
			category = analysis.Category
		}
		if analysis.Summary != "" {
			summary = analysis.Summary
		}
	}

	return domain.CostProfile{
		Label:        item.Label,
		Severity:     severity,
		Category:     category,
		Summary:      summary,
		YearlySeries: series,
		Horizons:     horizons,
		MaxHorizon:   maxHorizon,
		MaxYearly:    maxYearly,
	}
}

// indexAnalyses builds a normalized-key lookup over the analyses. The
// first analysis wins on duplicate labels.
func indexAnalyses(analyses []domain.Analysis) map[string]domain.Analysis {
	index := make(map[string]domain.Analysis, len(analyses))
	for _, analysis := range analyses {
		key := normalizeLabel(analysis.DamageItem)
		if _, exists := index[key]; !exists {
			index[key] = analysis
		}
	}
	return index
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

package adapters

import (
	"math"

	"github.com/de-tools/repair-atlas/pkg/models/api"
	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/services/forecast"
)

func MapApiDetectionToDomainItem(detection api.Detection) domain.DamageItem {
	severity, ok := detection.Severity.Value()
	if !ok {
		severity = domain.DefaultSeverity
	}
	return domain.DamageItem{
		Label:    detection.Label,
		Severity: domain.ClampSeverity(severity),
	}
}

func MapApiAnalysisToDomain(analysis api.Analysis) domain.Analysis {
	severity, ok := analysis.Severity.Value()
	if !ok {
		severity = domain.DefaultSeverity
	}

	result := domain.Analysis{
		DamageItem: analysis.DamageItem,
		Severity:   domain.ClampSeverity(severity),
	}

	if analysis.CompleteData != nil {
		result.Category = analysis.CompleteData.Category
	}
	if analysis.TenYearProjection != nil {
		result.Summary = analysis.TenYearProjection.Summary
		for _, row := range analysis.TenYearProjection.YearlyCosts {
			result.YearlyCosts = append(result.YearlyCosts, mapApiYearlyCostToDomain(row))
		}
	}

	return result
}

func mapApiYearlyCostToDomain(row api.YearlyCost) domain.YearlyCost {
	var cost float64
	if row.Cost != nil {
		cost = math.Round(*row.Cost)
	}
	if cost < 0 {
		cost = 0
	}

	work := row.ScheduledWork
	if work == "" {
		work = row.Notes
	}
	if cost == 0 && work == "" {
		work = forecast.WorkNone
	}

	return domain.YearlyCost{
		Year:          row.Year,
		Cost:          cost,
		ScheduledWork: work,
	}
}

func MapDomainProfileToApi(profile domain.CostProfile) api.CostProfile {
	result := api.CostProfile{
		Label:        profile.Label,
		Severity:     profile.Severity,
		Category:     profile.Category,
		Summary:      profile.Summary,
		YearlySeries: make([]api.YearlyCost, 0, len(profile.YearlySeries)),
		Horizons:     make([]api.HorizonTotal, 0, len(profile.Horizons)),
		MaxHorizon:   profile.MaxHorizon,
		MaxYearly:    profile.MaxYearly,
	}

	for _, row := range profile.YearlySeries {
		cost := row.Cost
		result.YearlySeries = append(result.YearlySeries, api.YearlyCost{
			Year:          row.Year,
			Cost:          &cost,
			ScheduledWork: row.ScheduledWork,
		})
	}
	for _, h := range profile.Horizons {
		result.Horizons = append(result.Horizons, api.HorizonTotal{Year: h.Year, Total: h.Total})
	}

	return result
}

func MapDomainPhotoToApi(photo domain.ProcessedPhoto) api.Photo {
	result := api.Photo{
		ID:           photo.ID,
		FileName:     photo.FileName,
		CostProfiles: make([]api.CostProfile, 0, len(photo.CostProfiles)),
	}
	for _, profile := range photo.CostProfiles {
		result.CostProfiles = append(result.CostProfiles, MapDomainProfileToApi(profile))
	}
	return result
}

// MapDomainPortfolioToApi maps a portfolio report, turning the nil
// (empty portfolio) case into empty slices for the wire.
func MapDomainPortfolioToApi(report *domain.PortfolioReport) api.PortfolioReport {
	result := api.PortfolioReport{
		Totals:     []api.HorizonTotal{},
		TopSystems: []api.SystemValue{},
	}
	if report == nil {
		return result
	}

	for _, total := range report.Totals {
		result.Totals = append(result.Totals, api.HorizonTotal{Year: total.Year, Total: total.Total})
	}
	for _, system := range report.TopSystems {
		result.TopSystems = append(result.TopSystems, api.SystemValue{
			Label: system.Label,
			Value: system.Value,
		})
	}
	return result
}

func MapDomainHorizonDrillDownToApi(dd domain.HorizonDrillDown) api.HorizonDrillDown {
	result := api.HorizonDrillDown{
		Year:         dd.Year,
		Yearly:       make([]api.YearBreakdown, 0, len(dd.Yearly)),
		Distribution: make([]api.SystemValue, 0, len(dd.Distribution)),
	}

	for _, year := range dd.Yearly {
		systems := make(map[string]float64, len(year.Systems))
		for label, cost := range year.Systems {
			systems[label] = cost
		}
		result.Yearly = append(result.Yearly, api.YearBreakdown{
			Year:    year.Year,
			Total:   year.Total,
			Systems: systems,
		})
	}
	for _, system := range dd.Distribution {
		result.Distribution = append(result.Distribution, api.SystemValue{
			Label: system.Label,
			Value: system.Value,
		})
	}

	return result
}

func MapDomainSystemDrillDownToApi(dd domain.SystemDrillDown) api.SystemDrillDown {
	result := api.SystemDrillDown{
		Label:           dd.Label,
		TotalCost:       dd.TotalCost,
		AverageSeverity: dd.AverageSeverity,
		InstanceCount:   dd.InstanceCount,
		Yearly:          make([]api.YearInstances, 0, len(dd.Yearly)),
	}

	for _, year := range dd.Yearly {
		instances := make([]api.InstanceCost, 0, len(year.Instances))
		for _, instance := range year.Instances {
			instances = append(instances, api.InstanceCost{
				Photo:         instance.Photo,
				Cost:          instance.Cost,
				ScheduledWork: instance.ScheduledWork,
			})
		}
		result.Yearly = append(result.Yearly, api.YearInstances{
			Year:      year.Year,
			Total:     year.Total,
			Instances: instances,
		})
	}

	return result
}

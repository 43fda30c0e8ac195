package api

// Detection is one damage detection reported for a photo.
type Detection struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// YearlyCost is a wire-level projection row. ScheduledWork may arrive
// under either "scheduled_work" or "notes" depending on the
// collaborator.
type YearlyCost struct {
	Year          int      `json:"year"`
	Cost          *float64 `json:"cost"`
	ScheduledWork string   `json:"scheduled_work"`
	Notes         string   `json:"notes,omitempty"`
}

// CompleteData carries the catalog fields of an analysis. Only the
// category is consumed here; the rest is passed through for display.
type CompleteData struct {
	Category string `json:"Category"`
}

// TenYearProjection is the projection block of an authoritative
// analysis. Every field is optional.
type TenYearProjection struct {
	YearlyCosts []YearlyCost `json:"yearly_costs"`
	Summary     string       `json:"summary"`
}

// Analysis is one authoritative damage analysis as delivered by the
// detection/pricing collaborator. Fields are optional at every level.
type Analysis struct {
	DamageItem        string             `json:"damage_item"`
	Severity          Severity           `json:"severity"`
	CompleteData      *CompleteData      `json:"complete_data"`
	TenYearProjection *TenYearProjection `json:"ten_year_projection"`
}

// ProcessPhotoRequest submits one photo's detections, optionally with
// inline authoritative analyses. When analyses are absent the service
// resolves them against the local catalog.
type ProcessPhotoRequest struct {
	FileName   string      `json:"file_name"`
	Detections []Detection `json:"detections"`
	Analyses   []Analysis  `json:"analyses"`
}

// HorizonTotal is a cumulative rollup at one of the fixed horizon
// years.
type HorizonTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// CostProfile is the complete per-item projection served to renderers.
type CostProfile struct {
	Label        string         `json:"label"`
	Severity     int            `json:"severity"`
	Category     string         `json:"category"`
	Summary      string         `json:"summary"`
	YearlySeries []YearlyCost   `json:"yearly_series"`
	Horizons     []HorizonTotal `json:"horizons"`
	MaxHorizon   float64        `json:"max_horizon"`
	MaxYearly    float64        `json:"max_yearly"`
}

// Photo is a processed photo with its cost profiles.
type Photo struct {
	ID           string        `json:"id"`
	FileName     string        `json:"file_name"`
	CostProfiles []CostProfile `json:"cost_profiles"`
}

// SystemValue is a labeled aggregate for rankings and distributions.
type SystemValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PortfolioReport is the portfolio-wide rollup.
type PortfolioReport struct {
	Totals     []HorizonTotal `json:"totals"`
	TopSystems []SystemValue  `json:"top_systems"`
}

// YearBreakdown is one year of a horizon drill-down.
type YearBreakdown struct {
	Year    int                `json:"year"`
	Total   float64            `json:"total"`
	Systems map[string]float64 `json:"systems"`
}

// HorizonDrillDown is the per-year breakdown of a selected horizon.
type HorizonDrillDown struct {
	Year         int             `json:"year"`
	Yearly       []YearBreakdown `json:"yearly"`
	Distribution []SystemValue   `json:"distribution"`
}

// InstanceCost is one photo's contribution to a system's yearly cost.
type InstanceCost struct {
	Photo         string  `json:"photo"`
	Cost          float64 `json:"cost"`
	ScheduledWork string  `json:"scheduled_work"`
}

// YearInstances is one year of a system drill-down.
type YearInstances struct {
	Year      int            `json:"year"`
	Total     float64        `json:"total"`
	Instances []InstanceCost `json:"instances"`
}

// SystemDrillDown is the cross-photo breakdown of a selected system.
type SystemDrillDown struct {
	Label           string          `json:"label"`
	TotalCost       float64         `json:"total_cost"`
	AverageSeverity int             `json:"average_severity"`
	InstanceCount   int             `json:"instance_count"`
	Yearly          []YearInstances `json:"yearly"`
}

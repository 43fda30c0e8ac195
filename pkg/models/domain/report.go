package domain

// SystemValue is a labeled cost aggregate, used for top-cost-driver
// rankings and horizon distributions.
type SystemValue struct {
	Label string
	Value float64
}

// PortfolioReport aggregates every processed photo: cumulative totals
// at each horizon year plus the top three cost drivers. It is derived
// fresh from the current photo list on every read.
type PortfolioReport struct {
	Totals     []HorizonTotal
	TopSystems []SystemValue
}

// YearBreakdown is one year of a horizon drill-down: the portfolio-wide
// total for that year and its per-system split.
type YearBreakdown struct {
	Year    int
	Total   float64
	Systems map[string]float64
}

// HorizonDrillDown is the on-demand breakdown of a selected horizon
// year: one YearBreakdown per year up to the horizon, plus the
// cumulative per-system distribution through that year (descending,
// positive entries only).
type HorizonDrillDown struct {
	Year         int
	Yearly       []YearBreakdown
	Distribution []SystemValue
}

// InstanceCost is one photo's contribution to a system's yearly cost.
type InstanceCost struct {
	Photo         string
	Cost          float64
	ScheduledWork string
}

// YearInstances is one year of a system drill-down with the
// contributing photo instances retained for tooltip detail.
type YearInstances struct {
	Year      int
	Total     float64
	Instances []InstanceCost
}

// SystemDrillDown is the on-demand cross-photo breakdown of a selected
// system label.
type SystemDrillDown struct {
	Label           string
	TotalCost       float64
	AverageSeverity int
	InstanceCount   int
	Yearly          []YearInstances
}

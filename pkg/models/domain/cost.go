package domain

// ProjectionYears is the length of every repair-cost series.
const ProjectionYears = 15

// HorizonYears are the fixed report years at which cumulative cost is
// rolled up, in ascending order.
var HorizonYears = [3]int{5, 10, 15}

// YearlyCost is a single projection row. Cost is non-negative and
// rounded to the currency unit.
type YearlyCost struct {
	Year          int
	Cost          float64
	ScheduledWork string
}

// HorizonTotal is the cumulative cost of a series up to and including
// a horizon year.
type HorizonTotal struct {
	Year  int
	Total float64
}

// Analysis is an authoritative cost analysis for one damage item, as
// supplied by the pricing collaborator. YearlyCosts may be sparse and
// every other field may be empty.
type Analysis struct {
	DamageItem  string
	Severity    int
	Category    string
	YearlyCosts []YearlyCost
	Summary     string
}

// CostProfile is the complete per-item cost projection: a dense
// 15-year series (years 1..15, ascending, no gaps) plus the fixed
// horizon rollups. MaxHorizon and MaxYearly are floored at 1 so a
// renderer can always divide by them.
type CostProfile struct {
	Label        string
	Severity     int
	Category     string
	Summary      string
	YearlySeries []YearlyCost
	Horizons     []HorizonTotal
	MaxHorizon   float64
	MaxYearly    float64
}

// ProcessedPhoto is one analyzed photo with its cost profiles. Photos
// are immutable once created; re-processing replaces them wholesale.
type ProcessedPhoto struct {
	ID           string
	FileName     string
	CostProfiles []CostProfile
}

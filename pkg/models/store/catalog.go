package store

// CatalogEntry is one row of the authoritative damage-cost catalog:
// a building component with its reference price and expected lifespan.
type CatalogEntry struct {
	Category      string
	Item          string
	LifespanYears int
	PriceType     string
	Price         float64
	Unit          string
	Notes         string
}

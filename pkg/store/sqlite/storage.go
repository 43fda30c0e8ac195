package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const CatalogSchema = `
	CREATE TABLE IF NOT EXISTS catalog_entries (
		category TEXT NOT NULL,
		item TEXT NOT NULL,
		lifespan_years INTEGER NOT NULL DEFAULT 0,
		price_type TEXT,
		price REAL NOT NULL DEFAULT 0,
		unit TEXT,
		notes TEXT,
		PRIMARY KEY (category, item)
	);
`

var bootQueries = []string{
	CatalogSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the catalog database and applies the boot
// schema. Use ":memory:" for an ephemeral database.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply boot query: %w", err)
		}
	}

	return db, nil
}

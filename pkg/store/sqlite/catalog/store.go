package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/repair-atlas/pkg/models/store"
)

// Store provides read and ingestion access to the damage-cost catalog.
// FindItem matches a detected damage label against catalog items by
// case-insensitive containment, preferring exact matches and then the
// shortest (most specific) item name.
type Store interface {
	Add(ctx context.Context, entries []store.CatalogEntry) error
	FindItem(ctx context.Context, label string) (*store.CatalogEntry, error)
	ListCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type catalogStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{db: db}, nil
}

func (c *catalogStore) Add(ctx context.Context, entries []store.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO catalog_entries (
			category, item, lifespan_years, price_type, price, unit, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := c.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		_, err = stmt.ExecContext(ctx,
			entry.Category,
			entry.Item,
			entry.LifespanYears,
			entry.PriceType,
			entry.Price,
			entry.Unit,
			entry.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert entry %q: %w", entry.Item, err)
		}
	}

	return nil
}

func (c *catalogStore) FindItem(ctx context.Context, label string) (*store.CatalogEntry, error) {
	if label == "" {
		return nil, nil
	}

	query := `
		SELECT category, item, lifespan_years, price_type, price, unit, notes
		FROM catalog_entries
		WHERE instr(lower(item), lower(?)) > 0 OR instr(lower(?), lower(item)) > 0
		ORDER BY (lower(item) = lower(?)) DESC, length(item) ASC
		LIMIT 1`

	row := c.db.QueryRowContext(ctx, query, label, label, label)

	var entry store.CatalogEntry
	err := row.Scan(
		&entry.Category,
		&entry.Item,
		&entry.LifespanYears,
		&entry.PriceType,
		&entry.Price,
		&entry.Unit,
		&entry.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog item: %w", err)
	}

	return &entry, nil
}

func (c *catalogStore) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM catalog_entries ORDER BY category`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (c *catalogStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

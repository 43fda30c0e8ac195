package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/repair-atlas/pkg/models/store"
)

// defaultLifespan is assumed for catalog rows whose lifespan column is
// missing or unreadable.
const defaultLifespan = 20

// ImportCSV loads catalog entries from the reference dataset. Expected
// columns: Category, Item/Subitem, Lifespan (Years), Price Type,
// Price (EUR), Unit, Notes. Rows without a usable price are skipped;
// the dataset marks missing values with "-".
func ImportCSV(ctx context.Context, s Store, r io.Reader) (int, error) {
	logger := zerolog.Ctx(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	// Drop the header row when present.
	if strings.EqualFold(strings.TrimSpace(records[0][0]), "category") {
		records = records[1:]
	}

	var entries []store.CatalogEntry
	for i, record := range records {
		if len(record) < 6 {
			logger.Warn().Int("row", i+1).Msg("skipping short catalog row")
			continue
		}

		price, ok := parsePrice(record[4])
		if !ok {
			logger.Warn().
				Int("row", i+1).
				Str("item", record[1]).
				Msg("skipping catalog row without a usable price")
			continue
		}

		entry := store.CatalogEntry{
			Category:      strings.TrimSpace(record[0]),
			Item:          strings.TrimSpace(record[1]),
			LifespanYears: parseLifespan(record[2]),
			PriceType:     cell(record[3]),
			Price:         price,
			Unit:          cell(record[5]),
		}
		if len(record) > 6 {
			entry.Notes = cell(record[6])
		}
		entries = append(entries, entry)
	}

	if err := s.Add(ctx, entries); err != nil {
		return 0, fmt.Errorf("store catalog entries: %w", err)
	}

	return len(entries), nil
}

func cell(v string) string {
	v = strings.TrimSpace(v)
	if v == "-" {
		return ""
	}
	return v
}

func parsePrice(v string) (float64, bool) {
	v = cell(v)
	if v == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(v, "'", ""), 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}

func parseLifespan(v string) int {
	v = cell(v)
	years, err := strconv.Atoi(v)
	if err != nil || years <= 0 {
		return defaultLifespan
	}
	return years
}

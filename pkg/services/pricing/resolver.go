package pricing

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/store/sqlite/catalog"
)

// maxConcurrentLookups bounds parallel catalog lookups per photo.
const maxConcurrentLookups = 3

// Resolver matches damage items against the authoritative catalog and
// builds their cost analyses. A Resolver never fails a batch: items
// the catalog has no opinion on simply produce no analysis, leaving the
// projection engine to fall back to synthetic data.
type Resolver struct {
	catalog catalog.Store
}

func NewResolver(store catalog.Store) *Resolver {
	return &Resolver{catalog: store}
}

// Resolve looks up every item concurrently, capped at
// min(maxConcurrentLookups, len(items)) goroutines, and returns the
// analyses that were found, in item order.
func (r *Resolver) Resolve(ctx context.Context, items []domain.DamageItem) []domain.Analysis {
	if r == nil || r.catalog == nil || len(items) == 0 {
		return nil
	}

	logger := zerolog.Ctx(ctx)

	limit := maxConcurrentLookups
	if len(items) < limit {
		limit = len(items)
	}

	results := make([]*domain.Analysis, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			entry, err := r.catalog.FindItem(ctx, item.Label)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("item", item.Label).
					Msg("catalog lookup failed, falling back to synthetic data")
				return nil
			}
			if entry == nil {
				logger.Debug().
					Str("item", item.Label).
					Msg("no catalog match")
				return nil
			}

			analysis := BuildAnalysis(*entry, item)
			results[i] = &analysis
			return nil
		})
	}
	// Lookup failures are logged and degraded, never returned.
	_ = g.Wait()

	analyses := make([]domain.Analysis, 0, len(items))
	for _, result := range results {
		if result != nil {
			analyses = append(analyses, *result)
		}
	}
	return analyses
}

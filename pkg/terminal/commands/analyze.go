package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
	"github.com/de-tools/repair-atlas/pkg/services/portfolio"
	"github.com/de-tools/repair-atlas/pkg/services/pricing"
	"github.com/de-tools/repair-atlas/pkg/services/profile"
	"github.com/de-tools/repair-atlas/pkg/store/sqlite"
	"github.com/de-tools/repair-atlas/pkg/store/sqlite/catalog"
	"github.com/de-tools/repair-atlas/pkg/terminal/export"
)

type AnalyzeCmd struct {
	dbPath   string
	fileName string
	items    []string
	reporter *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Project repair costs for detected damage items",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dbPath, "db", "", "Path to the catalog database (synthetic data only when omitted)")
	cmd.Flags().StringVar(&ac.fileName, "file", "photo.jpg", "Photo file name, used to seed fallback items")
	cmd.Flags().StringArrayVar(&ac.items, "item", nil, `Damage item as "Label=severity" (repeatable)`)

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	items := make([]domain.DamageItem, 0, len(ac.items))
	for _, raw := range ac.items {
		items = append(items, parseItem(raw))
	}
	items = profile.PadDetections(ac.fileName, items)

	var analyses []domain.Analysis
	if ac.dbPath != "" {
		db, err := sqlite.NewDB(sqlite.Settings{DbPath: ac.dbPath})
		if err != nil {
			return fmt.Errorf("failed to open catalog db: %w", err)
		}
		defer db.Close()

		store, err := catalog.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create catalog store: %w", err)
		}
		analyses = pricing.NewResolver(store).Resolve(ctx, items)
	}

	profiles := profile.BuildAll(items, analyses)
	for _, p := range profiles {
		if err := ac.reporter.HandleProfile(p); err != nil {
			return fmt.Errorf("failed to print profile %q: %w", p.Label, err)
		}
	}

	photo := domain.ProcessedPhoto{FileName: ac.fileName, CostProfiles: profiles}
	return ac.reporter.HandlePortfolio(portfolio.Aggregate([]domain.ProcessedPhoto{photo}))
}

// parseItem reads a "Label=severity" flag value. A missing or
// unreadable severity defaults to 3.
func parseItem(raw string) domain.DamageItem {
	label, severityRaw, found := strings.Cut(raw, "=")

	severity := domain.DefaultSeverity
	if found {
		if parsed, err := strconv.Atoi(strings.TrimSpace(severityRaw)); err == nil {
			severity = parsed
		}
	}

	return domain.DamageItem{
		Label:    strings.TrimSpace(label),
		Severity: domain.ClampSeverity(severity),
	}
}

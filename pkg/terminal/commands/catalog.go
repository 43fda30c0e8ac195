package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/repair-atlas/pkg/store/sqlite"
	"github.com/de-tools/repair-atlas/pkg/store/sqlite/catalog"
)

func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the damage cost catalog",
	}

	cmd.AddCommand(newCatalogImportCmd())
	cmd.AddCommand(newCatalogStatsCmd())

	return cmd
}

type catalogImportCmd struct {
	dbPath  string
	csvPath string
}

func newCatalogImportCmd() *cobra.Command {
	ic := &catalogImportCmd{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import catalog entries from a CSV dataset",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.dbPath, "db", "repair-atlas.db", "Path to the catalog database")
	cmd.Flags().StringVar(&ic.csvPath, "csv", "", "Path to the CSV dataset")

	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func (ic *catalogImportCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open catalog db: %w", err)
	}
	defer db.Close()

	store, err := catalog.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}

	f, err := os.Open(ic.csvPath)
	if err != nil {
		return fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	imported, err := catalog.ImportCSV(ctx, store, f)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d catalog entries from %s\n", imported, ic.csvPath)
	return nil
}

type catalogStatsCmd struct {
	dbPath string
}

func newCatalogStatsCmd() *cobra.Command {
	sc := &catalogStatsCmd{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog entry count and categories",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.dbPath, "db", "repair-atlas.db", "Path to the catalog database")

	return cmd
}

func (sc *catalogStatsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: sc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open catalog db: %w", err)
	}
	defer db.Close()

	store, err := catalog.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\nCategories:\n%s\n",
		count,
		strings.Join(categories, "\n"))
	return nil
}

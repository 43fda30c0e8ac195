package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/repair-atlas/pkg/server"
	"github.com/de-tools/repair-atlas/pkg/services/config"
	"github.com/de-tools/repair-atlas/pkg/services/pricing"
	"github.com/de-tools/repair-atlas/pkg/services/session"
	"github.com/de-tools/repair-atlas/pkg/store/sqlite"
	"github.com/de-tools/repair-atlas/pkg/store/sqlite/catalog"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Repair Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open catalog db: %w", err)
	}
	defer db.Close()

	catalogStore, err := catalog.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}

	count, err := catalogStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if count == 0 && cfg.CatalogCSV != "" {
		f, err := os.Open(cfg.CatalogCSV)
		if err != nil {
			return fmt.Errorf("failed to open catalog dataset: %w", err)
		}
		imported, err := catalog.ImportCSV(ctx, catalogStore, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to import catalog dataset: %w", err)
		}
		logger.Info().Int("entries", imported).Str("csv", cfg.CatalogCSV).Msg("catalog imported")
	}
	logger.Info().Int64("entries", count).Msg("catalog ready")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Photos:     session.NewRegistry(),
			Resolver:   pricing.NewResolver(catalogStore),
			Categories: catalogStore,
		},
	})

	return api.Start()
}

package cmd

import (
	"context"
	"fmt"
	"log"

	"icoltex-hub/core/config"
	"icoltex-hub/core/database"
	"icoltex-hub/core/logger"
	"icoltex-hub/feature/catalog/models"
	"icoltex-hub/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs one catalog sync from the terminal, without the HTTP server.
var syncCmd = &cobra.Command{
	Use:       "sync [clients|products|categories|classes]",
	Short:     "Run one catalog sync against the Icoltex API",
	Long:      `Fetches the given entity feed from the Icoltex webhook API, reconciles it against the database, and prints the run summary.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"clients", "products", "categories", "classes"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		if err := db.AutoMigrate(
			&models.Client{}, &models.Product{},
			&models.ProductCategory{}, &models.ProductClass{},
		); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		fetcher := sync.NewWebhookFetcher(cfg.Icoltex, logg)
		service := sync.NewService(fetcher, db, logg)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var result *sync.RunResult
		switch args[0] {
		case "clients":
			result, err = service.SyncClients(ctx)
		case "products":
			result, err = service.SyncProducts(ctx)
		case "categories":
			result, err = service.SyncCategories(ctx)
		case "classes":
			result, err = service.SyncClasses(ctx)
		default:
			return fmt.Errorf("unknown entity %q", args[0])
		}
		if err != nil {
			return err
		}

		logg.Info("Sync summary",
			zap.String("entity", args[0]),
			zap.Int("totalFetched", result.TotalFetched),
			zap.Int("created", result.Created),
			zap.Int("updated", result.Updated),
			zap.Int("skipped", result.Skipped),
			zap.Int("errors", result.Errors))
		for _, detail := range result.Details {
			fmt.Println("  -", detail)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

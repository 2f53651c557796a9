package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"icoltex-hub/core/config"
	"icoltex-hub/core/database"
	"icoltex-hub/core/loader"
	"icoltex-hub/core/logger"
	mwauth "icoltex-hub/core/middleware/auth"
	"icoltex-hub/core/middleware/rayid"
	"icoltex-hub/core/storage"

	"icoltex-hub/feature/auth"
	"icoltex-hub/feature/catalog"
	"icoltex-hub/feature/catalog/models"
	"icoltex-hub/feature/gallery"
	"icoltex-hub/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog hub server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(
			&models.Client{}, &models.Product{},
			&models.ProductCategory{}, &models.ProductClass{},
			&models.Admin{}, &models.User{}, &models.AuthOTP{},
			&models.ProductLineGallery{},
		); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             25 * 1024 * 1024,
		})

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.AllowOrigins,
			AllowCredentials: true,
		}))

		// 6. Load Features
		// Public surface: catalog reads, auth, galleries.
		public := loader.NewManager()
		public.Register(catalog.NewFeature(db, logg))
		public.Register(auth.NewFeature(db, cfg.Auth, cfg.Mail, logg))

		galleryFeature := gallery.NewFeature(db, store, cfg.Storage, logg)
		public.Register(galleryFeature)

		if err := public.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Admin surface: sync triggers run behind the JWT guard.
		admin := app.Group("", mwauth.New(mwauth.Config{
			Secret: cfg.Auth.JWTSecret,
			Role:   mwauth.RoleAdmin,
		}))

		guarded := loader.NewManager()
		guarded.Register(sync.NewFeature(sync.NewWebhookFetcher(cfg.Icoltex, logg), db, logg))
		if err := guarded.LoadAll(admin); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Provision the gallery bucket. Storage being down only disables
		// uploads, so this is a warning, not a startup failure.
		bucketCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := galleryFeature.Service().EnsureBucket(bucketCtx); err != nil {
			logg.Warn("Gallery bucket unavailable", zap.Error(err))
		}
		cancel()

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

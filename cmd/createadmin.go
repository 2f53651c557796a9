package cmd

import (
	"fmt"
	"log"
	"strings"

	"icoltex-hub/core/config"
	"icoltex-hub/core/database"
	"icoltex-hub/core/logger"
	"icoltex-hub/feature/auth"
	"icoltex-hub/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

// createAdminCmd seeds a back-office administrator account.
var createAdminCmd = &cobra.Command{
	Use:   "createadmin",
	Short: "Create a back-office administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.ToLower(strings.TrimSpace(adminEmail))
		if email == "" || adminPassword == "" {
			return fmt.Errorf("--email and --password are required")
		}
		if len(adminPassword) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

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
		if err := db.AutoMigrate(&models.Admin{}); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		store := auth.NewStore(db)
		ctx := cmd.Context()

		existing, err := store.FindAdminByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("admin %q already exists", email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}

		if err := store.InsertAdmin(ctx, &models.Admin{
			Email:        email,
			PasswordHash: string(hash),
			Name:         adminName,
			Active:       true,
		}); err != nil {
			return err
		}

		logg.Info("Admin created", zap.String("email", email))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (min 8 characters)")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "display name")
	RootCmd.AddCommand(createAdminCmd)
}

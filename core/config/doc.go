// Package config provides configuration management for the catalog hub.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, CORS origins)
//   - Database: MySQL connection details (sqlite supported for tests)
//   - Storage: S3/MinIO credentials and bucket settings for gallery images
//   - Log: Logging level and format
//   - Icoltex: upstream webhook URL and Basic Auth credentials
//   - Auth: JWT secret and OTP lifetimes
//   - Mail: SMTP settings for OTP delivery
//
// Credentials are resolved once at startup and passed explicitly into the
// components that need them; nothing reads the process environment at call
// time.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

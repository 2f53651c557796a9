package config

import (
	"reflect"
	"strings"

	"icoltex-hub/core/database"
	"icoltex-hub/core/logger"
	"icoltex-hub/core/server"
	"icoltex-hub/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// IcoltexConfig holds configuration for the upstream Icoltex webhook API.
type IcoltexConfig struct {
	// BaseURL is the webhook base URL (endpoints appended to it).
	BaseURL string `mapstructure:"base_url" default:""`
	// User is the Basic Auth user for the webhook.
	User string `mapstructure:"user" default:""`
	// Password is the Basic Auth password for the webhook.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the HTTP request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Configured reports whether all credentials needed to reach the upstream
// API are present. Syncs refuse to start when this is false.
func (c IcoltexConfig) Configured() bool {
	return c.BaseURL != "" && c.User != "" && c.Password != ""
}

// AuthConfig holds configuration for authentication and OTP issuance.
type AuthConfig struct {
	// JWTSecret signs session tokens.
	JWTSecret string `mapstructure:"jwt_secret" default:"change-me-in-production"`
	// TokenTTLHours is the session token lifetime in hours.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"168"`
	// OTPTTLMinutes is how long a one-time code stays valid.
	OTPTTLMinutes int `mapstructure:"otp_ttl_minutes" default:"10"`
	// OTPResendSeconds is the minimum wait before a code can be resent.
	OTPResendSeconds int `mapstructure:"otp_resend_seconds" default:"60"`
}

// MailConfig holds configuration for outgoing SMTP mail.
type MailConfig struct {
	// Host is the SMTP server host.
	Host string `mapstructure:"host" default:"smtp.gmail.com"`
	// Port is the SMTP server port.
	Port int `mapstructure:"port" default:"587"`
	// User is the SMTP auth user.
	User string `mapstructure:"user" default:""`
	// Password is the SMTP auth password.
	Password string `mapstructure:"password" default:""`
	// From is the sender address; defaults to User when empty.
	From string `mapstructure:"from" default:""`
}

// Configured reports whether mail delivery is usable.
func (c MailConfig) Configured() bool {
	return c.User != "" && c.Password != ""
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the object storage (gallery images).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Icoltex holds configuration for the upstream webhook API.
	Icoltex IcoltexConfig `mapstructure:"icoltex"`
	// Auth holds configuration for JWT and OTP authentication.
	Auth AuthConfig `mapstructure:"auth"`
	// Mail holds configuration for SMTP delivery of OTP codes.
	Mail MailConfig `mapstructure:"mail"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. ICOLTEX_BASE_URL -> icoltex.base_url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}

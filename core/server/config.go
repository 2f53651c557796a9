package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"4000"`
	// AllowOrigins is the comma-separated list of origins allowed by CORS.
	AllowOrigins string `mapstructure:"allow_origins" default:"http://localhost:5173"`
}

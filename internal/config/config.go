package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Ops      OpsConfig      `mapstructure:"ops"`
}

// ServerConfig contains all gRPC server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// StreamBuffer caps how many streamed users may sit between the
	// storage cursor and the network writer before the reader blocks.
	StreamBuffer int `mapstructure:"stream_buffer" validate:"required,gte=16,lte=64"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// Add other DB settings as needed (e.g., pool size)
}

// OpsConfig contains settings for the plain-HTTP operations listener
// that serves health and readiness probes. A zero port disables it.
type OpsConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,gt=0,lt=65536"`
}

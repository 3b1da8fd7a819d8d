package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional config file, and
// environment variables (in increasing order of precedence), then validates
// the result. It returns the populated Config, or an error describing what
// is missing or malformed; callers should treat any error as fatal at
// startup rather than running with a partial configuration.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. The database URL deliberately has none: the service must
	// be told where its data lives.
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.stream_buffer", 32)
	v.SetDefault("ops.port", 8080)

	// Optional config file (config.yaml in the working directory).
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables, e.g. USERD_SERVER_PORT=9090. The database URL
	// is additionally bound to plain DATABASE_URL, the name most deployment
	// environments already provide.
	v.SetEnvPrefix("USERD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", "DATABASE_URL", "USERD_DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database.url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

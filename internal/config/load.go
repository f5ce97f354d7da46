package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults; the server is fully functional with nothing else provided.
const (
	defaultPort         = 8080
	defaultLogLevel     = "info"
	defaultPageLimit    = 10
	defaultMaxPageLimit = 100
)

// Load builds the configuration from defaults, an optional config file
// (demo-api.yaml in the working directory), and DEMO_-prefixed environment
// variables, in increasing order of precedence. The result is validated
// before being returned.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("pagination.default_limit", defaultPageLimit)
	v.SetDefault("pagination.max_limit", defaultMaxPageLimit)

	v.SetConfigName("demo-api")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

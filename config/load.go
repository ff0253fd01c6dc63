package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. SKILLSWAP_SERVER_PORT for server.port.
const EnvPrefix = "SKILLSWAP"

// Load reads configuration from defaults, an optional config.yaml and the
// environment. Environment variables take precedence over the file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/skillswap")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Plain PORT / AWS_REGION are what the deployment platform sets.
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port: %w", err)
	}
	if err := v.BindEnv("store.region", EnvPrefix+"_STORE_REGION", "AWS_REGION"); err != nil {
		return nil, fmt.Errorf("failed to bind region: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("server.request_timeout", "5s")

	v.SetDefault("store.driver", "dynamodb")
	v.SetDefault("store.region", "")
	v.SetDefault("store.endpoint", "")
	v.SetDefault("store.mongo_url", "")
	v.SetDefault("store.database", "skill_swap")
	v.SetDefault("store.tables.accounts", "users")
	v.SetDefault("store.tables.swaps", "swap_requests")
	v.SetDefault("store.tables.announcements", "announcements")
	v.SetDefault("store.tables.feedback", "feedback")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.require_token", false)

	v.SetDefault("media.bucket", "")
	v.SetDefault("media.region", "")
	v.SetDefault("media.presign_minutes", 5)
}

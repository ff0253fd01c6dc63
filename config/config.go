package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Media  MediaConfig  `mapstructure:"media"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel       string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=dynamodb mongodb memory"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
	MongoURL string `mapstructure:"mongo_url" validate:"required_if=Driver mongodb"`
	Database string `mapstructure:"database" validate:"required"`
	Tables   Tables `mapstructure:"tables" validate:"required"`
}

// Tables names the collections (DynamoDB tables or Mongo collections).
type Tables struct {
	Accounts      string `mapstructure:"accounts" validate:"required"`
	Swaps         string `mapstructure:"swaps" validate:"required"`
	Announcements string `mapstructure:"announcements" validate:"required"`
	Feedback      string `mapstructure:"feedback" validate:"required"`
}

// AuthConfig controls login tokens. With RequireToken unset the API trusts
// the email supplied in request bodies.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required_if=RequireToken true"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	RequireToken         bool   `mapstructure:"require_token"`
}

// MediaConfig configures avatar storage. An empty Bucket disables the media routes.
type MediaConfig struct {
	Bucket         string `mapstructure:"bucket"`
	Region         string `mapstructure:"region"`
	PresignMinutes int    `mapstructure:"presign_minutes" validate:"gt=0"`
}

// TokenLifetime returns the configured token lifetime as a duration.
func (a AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(a.TokenLifetimeMinutes) * time.Minute
}

// PresignExpiry returns how long presigned media URLs stay valid.
func (m MediaConfig) PresignExpiry() time.Duration {
	return time.Duration(m.PresignMinutes) * time.Minute
}

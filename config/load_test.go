package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test. An empty
// value behaves as unset because the loader ignores empty variables.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for _, name := range []string{
		"PORT", "AWS_REGION",
		"SKILLSWAP_SERVER_PORT", "SKILLSWAP_SERVER_LOG_LEVEL",
		"SKILLSWAP_STORE_DRIVER", "SKILLSWAP_STORE_MONGO_URL",
		"SKILLSWAP_AUTH_JWT_SECRET", "SKILLSWAP_AUTH_REQUIRE_TOKEN",
	} {
		t.Setenv(name, "")
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "dynamodb", cfg.Store.Driver)
	assert.Equal(t, "skill_swap", cfg.Store.Database)
	assert.Equal(t, "users", cfg.Store.Tables.Accounts)
	assert.Equal(t, "swap_requests", cfg.Store.Tables.Swaps)
	assert.Equal(t, "announcements", cfg.Store.Tables.Announcements)
	assert.Equal(t, "feedback", cfg.Store.Tables.Feedback)
	assert.False(t, cfg.Auth.RequireToken)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime())
	assert.Equal(t, 5*time.Minute, cfg.Media.PresignExpiry())
}

func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"SKILLSWAP_SERVER_PORT":        "9090",
		"SKILLSWAP_SERVER_LOG_LEVEL":   "debug",
		"SKILLSWAP_STORE_DRIVER":       "mongodb",
		"SKILLSWAP_STORE_MONGO_URL":    "mongodb://localhost:27017",
		"SKILLSWAP_AUTH_JWT_SECRET":    "thisisasecretkeythatis32charslong!!",
		"SKILLSWAP_AUTH_REQUIRE_TOKEN": "true",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb", cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.MongoURL)
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Auth.RequireToken)
}

func TestLoadPlatformFallbacks(t *testing.T) {
	setupEnv(t, map[string]string{
		"PORT":       "7070",
		"AWS_REGION": "eu-west-1",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "eu-west-1", cfg.Store.Region)
}

func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "port out of range",
			envVars: map[string]string{"SKILLSWAP_SERVER_PORT": "999999"},
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"SKILLSWAP_SERVER_LOG_LEVEL": "verbose"},
		},
		{
			name:    "unknown driver",
			envVars: map[string]string{"SKILLSWAP_STORE_DRIVER": "postgres"},
		},
		{
			name:    "mongodb without url",
			envVars: map[string]string{"SKILLSWAP_STORE_DRIVER": "mongodb"},
		},
		{
			name:    "token required without secret",
			envVars: map[string]string{"SKILLSWAP_AUTH_REQUIRE_TOKEN": "true"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}

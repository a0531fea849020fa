package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"AQUAHUB_SERVER_PORT":                         "server.port",
		"AQUAHUB_DATABASE_SSL_MODE":                   "database.ssl_mode",
		"AQUAHUB_OBSERVABILITY_NEW_RELIC_LICENSE_KEY": "observability.new_relic.license_key",
		"AQUAHUB_OBSERVABILITY_LOGGING_LEVEL":         "observability.logging.level",
		"AQUAHUB_OBSERVABILITY_HEALTH_CHECKS_TIMEOUT": "observability.health_checks.timeout",
		"AQUAHUB_INTEGRATION_RESEND_API_KEY":          "integration.resend_api_key",
		"AQUAHUB_UNKNOWN":                             "unknown",
	}

	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestEnvValue_SplitsLists(t *testing.T) {
	key, value := envValue("AQUAHUB_SERVER_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	assert.Equal(t, "server.cors_allowed_origins", key)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, value)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AQUAHUB_DATABASE_PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 20.0, cfg.Server.RegisterRateLimit)
	assert.Equal(t, 5.0, cfg.Server.LoginRateLimit)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "aquahub_db", cfg.Database.Name)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.False(t, cfg.Redis.Enabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AQUAHUB_PRIMARY_ENV", "production")
	t.Setenv("AQUAHUB_SERVER_PORT", "8080")
	t.Setenv("AQUAHUB_SERVER_LOGIN_RATE_LIMIT", "2")
	t.Setenv("AQUAHUB_DATABASE_PASSWORD", "secret")
	t.Setenv("AQUAHUB_DATABASE_PORT", "6543")
	t.Setenv("AQUAHUB_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("AQUAHUB_OBSERVABILITY_LOGGING_LEVEL", "warn")
	t.Setenv("AQUAHUB_OBSERVABILITY_HEALTH_CHECKS_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2.0, cfg.Server.LoginRateLimit)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, 2*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfig_RequiresDatabasePassword(t *testing.T) {
	t.Setenv("AQUAHUB_DATABASE_PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password")
}

func TestLoadConfig_RejectsBadLogLevel(t *testing.T) {
	t.Setenv("AQUAHUB_DATABASE_PASSWORD", "secret")
	t.Setenv("AQUAHUB_OBSERVABILITY_LOGGING_LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.False(t, cfg.HealthCheckEnabled("s3"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}

func TestObservabilityConfig_GetLogLevelFallback(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

// Package config loads the service configuration.
//
// Values come from three layers, later layers winning:
//   - built-in defaults (see defaults)
//   - a `.env` file in the working directory, if present
//   - process environment variables prefixed with AQUAHUB_
//
// Environment keys map onto the Config tree by section:
//
//	AQUAHUB_SERVER_PORT                        -> server.port
//	AQUAHUB_DATABASE_PASSWORD                  -> database.password
//	AQUAHUB_OBSERVABILITY_NEW_RELIC_LICENSE_KEY -> observability.new_relic.license_key
//
// The loaded tree is checked with go-playground/validator before use, so
// the process fails fast when a required value such as the database
// password is missing.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads .env into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "AQUAHUB_"

// ServiceName tags logs, traces and the New Relic application.
const ServiceName = "aquahub"

type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary describes the runtime environment: local, development or production.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig holds HTTP settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RegisterRateLimit is requests per second per client IP on the
	// registration endpoints. Zero disables the limiter.
	RegisterRateLimit float64 `koanf:"register_rate_limit" validate:"min=0"`

	// LoginRateLimit is the same limit for POST /api/login.
	LoginRateLimit float64 `koanf:"login_rate_limit" validate:"min=0"`
}

// DatabaseConfig holds PostgreSQL connection parameters and pool tuning.
// Lifetimes are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig backs the welcome-email job queue. An empty Address disables
// Redis and background jobs.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// AuthConfig holds the Clerk secret key. When set, the user listing
// requires a Clerk session.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// IntegrationConfig holds third-party API credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from" validate:"required"`
}

// sections lists nested key paths, deepest first, so env names can be
// split at the right underscore.
var sections = []string{
	"observability.new_relic",
	"observability.health_checks",
	"observability.logging",
	"observability",
	"primary",
	"server",
	"database",
	"redis",
	"auth",
	"integration",
}

// envKey converts AQUAHUB_DATABASE_SSL_MODE into database.ssl_mode.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	for _, section := range sections {
		flat := strings.ReplaceAll(section, ".", "_") + "_"
		if strings.HasPrefix(key, flat) {
			return section + "." + strings.TrimPrefix(key, flat)
		}
	}
	return key
}

// envValue splits comma separated lists for slice-valued keys.
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	switch key {
	case "server.cors_allowed_origins", "observability.health_checks.checks":
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return key, parts
	}
	return key, value
}

// LoadConfig builds and validates the configuration.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validate.Struct(mainConfig.Observability); err != nil {
		return nil, fmt.Errorf("observability config validation failed: %w", err)
	}
	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// defaults suit a local development database. There is
// deliberately no default database password.
func defaults() map[string]interface{} {
	obs := DefaultObservabilityConfig()

	return map[string]interface{}{
		"primary.env": "local",

		"server.port":                 "5000",
		"server.read_timeout":         15,
		"server.write_timeout":        15,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.register_rate_limit":  20.0,
		"server.login_rate_limit":     5.0,

		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.name":               "aquahub_db",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  3600,
		"database.conn_max_idle_time": 300,

		"integration.email_from": "AquaHub <onboarding@resend.dev>",

		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.logging.slow_query_threshold":          obs.Logging.SlowQueryThreshold.String(),
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
		"observability.health_checks.enabled":                 obs.HealthChecks.Enabled,
		"observability.health_checks.timeout":                 obs.HealthChecks.Timeout.String(),
		"observability.health_checks.checks":                  obs.HealthChecks.Checks,
	}
}

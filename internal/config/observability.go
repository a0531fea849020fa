package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups logging, New Relic and health check settings.
type ObservabilityConfig struct {
	// ServiceName and Environment are always overwritten by LoadConfig.
	ServiceName  string             `koanf:"service_name"`
	Environment  string             `koanf:"environment"`
	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// SlowQueryThreshold flags statements slower than this in the logs.
	// Zero turns the check off. Accepts duration strings like "250ms".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig configures the APM agent. An empty LicenseKey disables it.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls /api/health.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout bounds each dependency ping.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// Checks names the dependencies to probe: "database", "redis".
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig returns the settings used when nothing is configured.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "local",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
			Checks:  []string{"database", "redis"},
		},
	}
}

// Validate applies the rules that struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the configured level, falling back to info in
// production and debug elsewhere.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// NewRelicEnabled reports whether a license key was supplied.
func (c *ObservabilityConfig) NewRelicEnabled() bool {
	return c.NewRelic.LicenseKey != ""
}

// HealthCheckEnabled reports whether the named dependency should be probed.
func (c *ObservabilityConfig) HealthCheckEnabled(name string) bool {
	if !c.HealthChecks.Enabled {
		return false
	}
	for _, check := range c.HealthChecks.Checks {
		if check == name {
			return true
		}
	}
	return false
}

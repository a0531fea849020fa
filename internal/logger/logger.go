// Package logger configures zerolog for the service and, when a license key
// is present, the New Relic agent that receives forwarded logs and traces.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const timeFormat = "2006-01-02 15:04:05"

// LoggerService owns the New Relic application. A zero LoggerService is
// valid and means New Relic is disabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts the New Relic agent if a license key is configured.
func NewLoggerService(cfg *config.ObservabilityConfig) *LoggerService {
	service := &LoggerService{}

	if !cfg.NewRelicEnabled() {
		fmt.Println("New Relic license key not provided, skipping initialization")
		return service
	}

	configOptions := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
	}
	if cfg.NewRelic.DebugLogging {
		configOptions = append(configOptions, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(configOptions...)
	if err != nil {
		fmt.Printf("Failed to initialize New Relic: %v\n", err)
		return service
	}

	service.nrApp = app
	fmt.Printf("New Relic initialized for app: %s\n", cfg.ServiceName)
	return service
}

// Shutdown flushes pending New Relic data.
func (ls *LoggerService) Shutdown() {
	if ls != nil && ls.nrApp != nil {
		ls.nrApp.Shutdown(10 * time.Second)
	}
}

// GetApplication returns nil when New Relic is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// New builds the application logger without New Relic forwarding.
func New(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewLoggerWithService(cfg, nil)
}

// NewLoggerWithService builds the application logger. Production JSON output
// is forwarded to New Relic when the service carries an application.
func NewLoggerWithService(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	return newLogger(cfg, loggerService, os.Stdout)
}

func newLogger(cfg *config.ObservabilityConfig, loggerService *LoggerService, out io.Writer) zerolog.Logger {
	logLevel := ParseLevel(cfg.GetLogLevel())

	zerolog.TimeFieldFormat = timeFormat
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer
	if cfg.IsProduction() && cfg.Logging.Format == "json" {
		writer = out
		if app := loggerService.GetApplication(); app != nil {
			writer = zerologWriter.New(out, app)
		}
	} else {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
	}

	logger := zerolog.New(writer).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	if !cfg.IsProduction() {
		logger = logger.With().Stack().Logger()
	}

	return logger
}

// ParseLevel maps a config level name to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTraceContext stamps the logger with the transaction's trace and span ids.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}

// NewPgxLogger returns a console logger for SQL tracing. JSON arguments are
// pretty-printed and long strings are cut.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:              os.Stdout,
		TimeFormat:       timeFormat,
		FormatFieldValue: formatPgxField,
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("database", "postgres").
		Logger()
}

func formatPgxField(i any) string {
	switch v := i.(type) {
	case string:
		if len(v) > 200 {
			return v[:200] + "..."
		}
		return v
	case []byte:
		var obj any
		if err := json.Unmarshal(v, &obj); err == nil {
			pretty, _ := json.MarshalIndent(obj, "", "    ")
			return "\n" + string(pretty)
		}
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetPgxTraceLogLevel translates a zerolog level into the tracelog level
// with the same verbosity.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

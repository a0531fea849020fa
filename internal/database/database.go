// Package database owns the PostgreSQL connection pool.
//
// A single pgx pool is created per process. Repositories reach it through
// SQL, a database/sql handle opened over the same pool, so that they can
// share transactions. Query tracing is layered on through pgx tracers: New
// Relic when enabled, SQL logging in the local environment and a slow-query
// warning everywhere.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rk2835/aquahub/internal/config"
	loggerConfig "github.com/rk2835/aquahub/internal/logger"
	"github.com/rs/zerolog"
)

type Database struct {
	Pool *pgxpool.Pool
	SQL  *sql.DB
	log  *zerolog.Logger
}

// DatabasePingTimeout is the startup ping deadline in seconds.
const DatabasePingTimeout = 10

// DSN builds the postgres URL for cfg. Credentials and the database name
// are escaped.
func DSN(cfg config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		hostPort,
		url.PathEscape(cfg.Name),
		cfg.SSLMode,
	)
}

// New opens the pool, attaches tracers and pings the server.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(DSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	if tracer := buildTracer(cfg, logger, loggerService); tracer != nil {
		pgxPoolConfig.ConnConfig.Tracer = tracer
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return &Database{
		Pool: pool,
		SQL:  stdlib.OpenDBFromPool(pool),
		log:  logger,
	}, nil
}

func buildTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []any

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, newSlowQueryTracer(logger, cfg.Observability.Logging.SlowQueryThreshold))
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		if t, ok := tracers[0].(pgx.QueryTracer); ok {
			return t
		}
	}
	return &multiTracer{tracers: tracers}
}

// Close releases the sql handle and the pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")

	var err error
	if db.SQL != nil {
		err = db.SQL.Close()
	}
	db.Pool.Close()
	return err
}

// Ping checks connectivity. Used by the health endpoint.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

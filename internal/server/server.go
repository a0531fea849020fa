// Package server composes the application's long-lived dependencies and
// owns their lifecycle: configuration, logging, the PostgreSQL pool, the
// optional Redis client and job workers, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/lib/email"
	"github.com/rk2835/aquahub/internal/lib/job"
	loggerPkg "github.com/rk2835/aquahub/internal/logger"
	"github.com/rs/zerolog"
)

// Server is the application container shared by handlers and middleware.
// It is not the HTTP server itself.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	// Redis and Job are nil when no Redis address is configured.
	Redis *redis.Client
	Job   *job.JobService

	httpServer *http.Server
}

// New connects to PostgreSQL and, when configured, Redis, then starts the
// background job workers. A failed database connection is fatal; an
// unreachable Redis is logged and registration carries on without
// welcome emails being delivered until it comes back.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if !cfg.Redis.Enabled() {
		logger.Info().Msg("redis address not configured, background jobs disabled")
		return s, nil
	}

	s.Redis = redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService.GetApplication() != nil {
		s.Redis.AddHook(nrredis.NewHook(s.Redis.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Redis.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("failed to connect to redis, continuing")
	}

	s.Job = job.NewJobService(logger, cfg, email.NewClient(cfg, logger))
	if err := s.Job.Start(); err != nil {
		_ = db.Close()
		_ = s.Redis.Close()
		return nil, err
	}

	return s, nil
}

// SetupHTTPServer configures the listener around handler. Timeouts are
// configured in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests, then stops the workers and closes the
// Redis client and database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/handler"
	"github.com/rk2835/aquahub/internal/logger"
	"github.com/rk2835/aquahub/internal/router"
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rk2835/aquahub/internal/service"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 30 * time.Second
	staticDirFlag   = "static-dir"
)

var serveFlags = map[string]cobraflags.Flag{
	staticDirFlag: &cobraflags.StringFlag{
		Name:  staticDirFlag,
		Value: handler.DefaultStaticDir,
		Usage: "Directory holding openapi.html and openapi.json",
	},
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API and, when a Redis address is configured, the
background job workers. Outside the local environment pending migrations
are applied first.`,
		RunE: serveCommand,
	}

	cobraflags.RegisterMap(cmd, serveFlags)
	return cmd
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, &log, cfg, -1); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	services, err := service.NewServices(srv)
	if err != nil {
		return fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services, serveFlags[staticDirFlag].GetString())

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = srv.Shutdown(context.Background())
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/middleware"
	"github.com/rk2835/aquahub/internal/server"
)

const Version = "1.0.0"

// dependencyCheck probes one backing service.
type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
}

type HealthHandler struct {
	Handler
	timeout time.Duration
	checks  []dependencyCheck
}

// NewHealthHandler probes the database and, when configured, Redis. The
// observability config can switch either check off.
func NewHealthHandler(s *server.Server) *HealthHandler {
	obs := s.Config.Observability
	if obs == nil {
		obs = config.DefaultObservabilityConfig()
	}

	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: obs.HealthChecks.Timeout,
	}

	if s.DB != nil && obs.HealthCheckEnabled("database") {
		h.checks = append(h.checks, dependencyCheck{name: "database", ping: s.DB.Ping})
	}

	if s.Redis != nil && obs.HealthCheckEnabled("redis") {
		h.checks = append(h.checks, dependencyCheck{name: "redis", ping: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}})
	}

	return h
}

// CheckHealth handles GET /api/health: 200 when every check passes,
// otherwise 503 with the failing check's error.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	isHealthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			isHealthy = false
			checks[check.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordFailure(check.name, elapsed, err)
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}

		logger.Debug().
			Str("check", check.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"version":     Version,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}

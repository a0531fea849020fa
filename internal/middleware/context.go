package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rk2835/aquahub/internal/logger"
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rs/zerolog"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
	LoggerKey   = "logger"
)

// ContextEnhancer attaches a request-scoped logger to every request.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext builds a logger carrying request_id, method, path, ip,
// trace ids and, once authenticated, the user. It is stored on the echo
// context and on the request context, where zerolog.Ctx finds it.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}

			if userRole, ok := c.Get(UserRoleKey).(string); ok && userRole != "" {
				contextLogger = contextLogger.With().Str("user_role", userRole).Logger()
			}

			c.Set(LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(contextLogger.WithContext(c.Request().Context())))

			return next(c)
		}
	}
}

func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetLogger returns the request logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

package middleware

import (
	"math"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rk2835/aquahub/internal/errs"
	"github.com/rk2835/aquahub/internal/server"
	"golang.org/x/time/rate"
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}

// Limit allows perSecond requests per client IP, with an equal burst.
// Zero or less disables limiting.
func (r *RateLimitMiddleware) Limit(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     int(math.Ceil(perSecond)),
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("client", identifier).
				Str("endpoint", c.Path()).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many requests, please try again later")
		},
	})
}

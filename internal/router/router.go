// Package router builds the echo instance: global middleware in order,
// then the API and system routes.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/handler"
	"github.com/rk2835/aquahub/internal/middleware"
	"github.com/rk2835/aquahub/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")

	register := api.Group("/register", middlewares.RateLimit.Limit(s.Config.Server.RegisterRateLimit))
	register.POST("/customer", h.Registration.RegisterCustomer())
	register.POST("/vendor", h.Registration.RegisterVendor())

	api.GET("/users", h.User.ListUsers(), middlewares.Auth.RequireAuthIfEnabled())
	api.POST("/login", h.Auth.Login(), middlewares.RateLimit.Limit(s.Config.Server.LoginRateLimit))

	return router
}

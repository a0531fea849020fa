package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/handler"
)

// registerSystemRoutes mounts the routes that sit outside the business API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/api/health", h.Health.CheckHealth)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.Static("/static", h.OpenAPI.StaticDir())
}

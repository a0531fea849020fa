package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/server"
)

// DefaultStaticDir is resolved against the working directory.
const DefaultStaticDir = "static"

// OpenAPIHandler serves the API reference UI, which loads openapi.json
// from /static.
type OpenAPIHandler struct {
	Handler
	staticDir string
}

func NewOpenAPIHandler(s *server.Server, staticDir string) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:   NewHandler(s),
		staticDir: staticDir,
	}
}

// StaticDir is the directory mounted at /static.
func (h *OpenAPIHandler) StaticDir() string {
	return h.staticDir
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(filepath.Join(h.staticDir, "openapi.html"))

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(page)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

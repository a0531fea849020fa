// Package handler is the HTTP layer. It binds and validates payloads,
// calls the service layer and writes JSON. Errors are left to the global
// error handler.
package handler

import (
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rk2835/aquahub/internal/service"
)

type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Registration *RegistrationHandler
	User         *UserHandler
	Auth         *AuthHandler
}

// NewHandlers wires each handler to its service. staticDir holds the
// OpenAPI assets.
func NewHandlers(s *server.Server, services *service.Services, staticDir string) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s, staticDir),
		Registration: NewRegistrationHandler(s, services.Registration),
		User:         NewUserHandler(s, services.Users),
		Auth:         NewAuthHandler(s, services.Auth),
	}
}

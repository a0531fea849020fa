package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/server"
)

// Registrar creates accounts. *service.RegistrationService implements it.
type Registrar interface {
	RegisterCustomer(ctx context.Context, req *model.CustomerRegistration) (*model.RegistrationResponse, error)
	RegisterVendor(ctx context.Context, req *model.VendorRegistration) (*model.RegistrationResponse, error)
}

type RegistrationHandler struct {
	Handler
	registrar Registrar
}

func NewRegistrationHandler(s *server.Server, registrar Registrar) *RegistrationHandler {
	return &RegistrationHandler{
		Handler:   NewHandler(s),
		registrar: registrar,
	}
}

// RegisterCustomer handles POST /api/register/customer.
func (h *RegistrationHandler) RegisterCustomer() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.CustomerRegistration) (*model.RegistrationResponse, error) {
		return h.registrar.RegisterCustomer(c.Request().Context(), req)
	}, http.StatusCreated, &model.CustomerRegistration{})
}

// RegisterVendor handles POST /api/register/vendor.
func (h *RegistrationHandler) RegisterVendor() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.VendorRegistration) (*model.RegistrationResponse, error) {
		return h.registrar.RegisterVendor(c.Request().Context(), req)
	}, http.StatusCreated, &model.VendorRegistration{})
}

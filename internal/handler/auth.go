package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/server"
)

type Authenticator interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type AuthHandler struct {
	Handler
	auth Authenticator
}

func NewAuthHandler(s *server.Server, auth Authenticator) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// Login handles POST /api/login. It only checks credentials; no session is
// issued.
func (h *AuthHandler) Login() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
		return h.auth.Login(c.Request().Context(), req)
	}, http.StatusOK, &model.LoginRequest{})
}

package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/server"
)

type UserLister interface {
	ListUsers(ctx context.Context) (*model.UserListResponse, error)
}

type UserHandler struct {
	Handler
	users UserLister
}

func NewUserHandler(s *server.Server, users UserLister) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsers handles GET /api/users, newest accounts first.
func (h *UserHandler) ListUsers() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *model.ListUsersRequest) (*model.UserListResponse, error) {
		return h.users.ListUsers(c.Request().Context())
	}, http.StatusOK, &model.ListUsersRequest{})
}

package service

import (
	"context"
	"fmt"

	"github.com/rk2835/aquahub/internal/model"
)

type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// ListUsers returns all users newest first with their display names.
func (s *UserService) ListUsers(ctx context.Context) (*model.UserListResponse, error) {
	users, err := s.store.Repos().Users.ListWithDisplayName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &model.UserListResponse{Users: users}, nil
}

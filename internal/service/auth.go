package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/google/uuid"
	"github.com/rk2835/aquahub/internal/errs"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/repository"
)

const invalidCredentials = "Invalid email or password"

type AuthService struct {
	store  Store
	hasher PasswordHasher

	dummyOnce sync.Once
	dummy     string
}

// NewAuthService configures the Clerk SDK when clerkSecretKey is set, so
// the session middleware can verify tokens.
func NewAuthService(clerkSecretKey string, store Store, hasher PasswordHasher) *AuthService {
	if clerkSecretKey != "" {
		clerk.SetKey(clerkSecretKey)
	}

	return &AuthService{
		store:  store,
		hasher: hasher,
	}
}

// Login checks the credentials and tells the client which dashboard to
// open. Unknown emails and wrong passwords get the same 401.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	users := s.store.Repos().Users

	user, err := users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Pay the same bcrypt cost as a known email.
			_ = s.hasher.Compare(s.dummyHash(), req.Password)
			return nil, errs.NewUnauthorizedError(invalidCredentials, true)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, errs.NewUnauthorizedError(invalidCredentials, true)
	}

	name, err := users.DisplayName(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &model.LoginResponse{
		Success: true,
		User: model.LoginUser{
			ID:       user.ID,
			Email:    user.Email,
			UserType: user.UserType,
			Name:     name,
		},
		Redirect: user.UserType.DashboardPath(),
	}, nil
}

// dummyHash is a hash of a random value, compared against when the email
// is unknown.
func (s *AuthService) dummyHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err == nil {
			s.dummy = hash
		}
	})
	return s.dummy
}

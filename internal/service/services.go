package service

import (
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rs/zerolog"
)

type Services struct {
	Registration *RegistrationService
	Users        *UserService
	Auth         *AuthService
}

// NewServices builds every service over the server's database. The welcome
// email is only scheduled when the job service is running.
func NewServices(s *server.Server) (*Services, error) {
	store := NewStore(s.DB.SQL)
	hasher := NewBcryptHasher(0)

	var welcome WelcomeEnqueuer
	if s.Job != nil {
		welcome = s.Job
	}

	logger := s.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Services{
		Registration: NewRegistrationService(store, hasher, welcome, logger),
		Users:        NewUserService(store),
		Auth:         NewAuthService(s.Config.Auth.SecretKey, store, hasher),
	}, nil
}

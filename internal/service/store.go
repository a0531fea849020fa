package service

import (
	"context"
	"database/sql"

	"github.com/rk2835/aquahub/internal/database"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	DisplayName(ctx context.Context, user *model.User) (*string, error)
	ListWithDisplayName(ctx context.Context) ([]model.UserSummary, error)
}

type CustomerRepository interface {
	CreateProfile(ctx context.Context, p *model.CustomerProfile) error
	CreateWaterRequirement(ctx context.Context, w *model.WaterRequirement) error
}

type VendorRepository interface {
	CreateProfile(ctx context.Context, p *model.VendorProfile) error
	CreateService(ctx context.Context, s *model.VendorService) error
}

// Repos is a set of repositories bound to one connection or transaction.
type Repos struct {
	Users     UserRepository
	Customers CustomerRepository
	Vendors   VendorRepository
}

// Store hands out repositories, either standalone or scoped to a
// transaction that commits only if fn succeeds.
type Store interface {
	Repos() Repos
	InTx(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error
}

type sqlStore struct {
	db *sql.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Repos() Repos {
	return reposFor(s.db)
}

func (s *sqlStore) InTx(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error {
	return database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		return fn(ctx, reposFor(tx))
	})
}

func reposFor(db database.DBTX) Repos {
	r := repository.NewRepositories(db)
	return Repos{
		Users:     r.Users,
		Customers: r.Customers,
		Vendors:   r.Vendors,
	}
}

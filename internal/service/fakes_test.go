package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/repository"
)

// memStore is an in-memory Store. Writes inside InTx are staged and only
// become visible on commit; the email index is claimed eagerly, the way a
// unique index holds the key for the lifetime of the inserting transaction.
type memStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*model.User
	emails    map[string]uuid.UUID
	customers []*model.CustomerProfile
	vendors   []*model.VendorProfile
	water     []*model.WaterRequirement
	services  []*model.VendorService
	nextID    int64
	clock     int64

	failOn string
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[uuid.UUID]*model.User{},
		emails: map[string]uuid.UUID{},
	}
}

var errInjected = errors.New("injected failure")

type memTx struct {
	store     *memStore
	users     []*model.User
	customers []*model.CustomerProfile
	vendors   []*model.VendorProfile
	water     []*model.WaterRequirement
	services  []*model.VendorService
}

func (s *memStore) Repos() Repos {
	return Repos{Users: &memUsers{store: s}}
}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error {
	tx := &memTx{store: s}
	err := fn(ctx, Repos{
		Users:     &memUsers{store: s, tx: tx},
		Customers: &memCustomers{tx: tx},
		Vendors:   &memVendors{tx: tx},
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		for _, u := range tx.users {
			delete(s.emails, u.Email)
		}
		return err
	}

	for _, u := range tx.users {
		s.users[u.ID] = u
	}
	s.customers = append(s.customers, tx.customers...)
	s.vendors = append(s.vendors, tx.vendors...)
	s.water = append(s.water, tx.water...)
	s.services = append(s.services, tx.services...)
	return nil
}

func (s *memStore) id() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

func (s *memStore) fail(op string) error {
	if s.failOn == op {
		return errInjected
	}
	return nil
}

type memUsers struct {
	store *memStore
	tx    *memTx
}

func (r *memUsers) Create(_ context.Context, user *model.User) error {
	if err := r.store.fail("users.create"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.emails[user.Email]; taken {
		return &pgconn.PgError{
			Severity:       "ERROR",
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "users_email_key"`,
			TableName:      "users",
			ConstraintName: "users_email_key",
		}
	}
	r.store.emails[user.Email] = user.ID
	r.store.clock++
	user.CreatedAt = time.Unix(1700000000+r.store.clock, 0).UTC()
	user.UpdatedAt = user.CreatedAt
	r.tx.users = append(r.tx.users, user)
	return nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.emails[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *memUsers) DisplayName(_ context.Context, user *model.User) (*string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.customers {
		if c.UserID == user.ID {
			name := c.FullName()
			return &name, nil
		}
	}
	for _, v := range r.store.vendors {
		if v.UserID == user.ID {
			name := v.BusinessName
			return &name, nil
		}
	}
	return nil, nil
}

func (r *memUsers) ListWithDisplayName(ctx context.Context) ([]model.UserSummary, error) {
	if err := r.store.fail("users.list"); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	users := make([]*model.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, u)
	}
	r.store.mu.Unlock()

	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	out := []model.UserSummary{}
	for _, u := range users {
		name, _ := r.DisplayName(ctx, u)
		out = append(out, model.UserSummary{ID: u.ID, Email: u.Email, UserType: u.UserType, CreatedAt: u.CreatedAt, Name: name})
	}
	return out, nil
}

type memCustomers struct {
	tx *memTx
}

func (r *memCustomers) CreateProfile(_ context.Context, p *model.CustomerProfile) error {
	if err := r.tx.store.fail("customers.profile"); err != nil {
		return err
	}
	p.ID = r.tx.store.id()
	r.tx.customers = append(r.tx.customers, p)
	return nil
}

func (r *memCustomers) CreateWaterRequirement(_ context.Context, w *model.WaterRequirement) error {
	if err := r.tx.store.fail("customers.water"); err != nil {
		return err
	}
	w.ID = r.tx.store.id()
	r.tx.water = append(r.tx.water, w)
	return nil
}

type memVendors struct {
	tx *memTx
}

func (r *memVendors) CreateProfile(_ context.Context, p *model.VendorProfile) error {
	if err := r.tx.store.fail("vendors.profile"); err != nil {
		return err
	}
	p.ID = r.tx.store.id()
	r.tx.vendors = append(r.tx.vendors, p)
	return nil
}

func (r *memVendors) CreateService(_ context.Context, s *model.VendorService) error {
	if err := r.tx.store.fail("vendors.service"); err != nil {
		return err
	}
	s.ID = r.tx.store.id()
	r.tx.services = append(r.tx.services, s)
	return nil
}

type fakeWelcome struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeWelcome) EnqueueWelcomeEmail(_ context.Context, to, name, userType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, to+"|"+name+"|"+userType)
	return f.err
}

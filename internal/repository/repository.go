// Package repository contains the SQL for the registration schema.
//
// Repositories are constructed over a database.DBTX so the same code runs
// against the shared *sql.DB or inside a transaction.
package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/rk2835/aquahub/internal/database"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Repositories groups the repositories bound to one DBTX.
type Repositories struct {
	Users     *UserRepository
	Customers *CustomerRepository
	Vendors   *VendorRepository
}

func NewRepositories(db database.DBTX) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Customers: NewCustomerRepository(db),
		Vendors:   NewVendorRepository(db),
	}
}

// textArray encodes a text[] parameter. Nil becomes an empty array since
// the array columns are NOT NULL.
func textArray(v []string) any {
	if v == nil {
		v = []string{}
	}
	return pq.Array(v)
}

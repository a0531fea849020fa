package service

import (
	"errors"
	"net/http"

	"github.com/rk2835/aquahub/internal/errs"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a salted bcrypt hasher. A cost below
// bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", &errs.HTTPError{
				Code:     "PASSWORD_TOO_LONG",
				Message:  "Password must not exceed 72 bytes",
				Status:   http.StatusBadRequest,
				Override: true,
				Errors:   []errs.FieldError{{Field: "password", Error: "must not exceed 72 bytes"}},
			}
		}
		return "", err
	}
	return string(hash), nil
}

func (h bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

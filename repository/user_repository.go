package repository

import (
	"errors"

	"mock-bank-api/model"
	"mock-bank-api/store"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// IUserRepository defines the contract for user lookups.
type IUserRepository interface {
	GetUserByEmail(email string) (*model.User, error)
}

type UserRepository struct {
	Store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{Store: s}
}

// GetUserByEmail finds a user by exact, case-sensitive email match.
func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range r.Store.Users() {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

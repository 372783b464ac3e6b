package repository

import (
	"mock-bank-api/logger"
	"mock-bank-api/model"
	"mock-bank-api/store"
)

// IAccountRepository defines the contract for account reads.
type IAccountRepository interface {
	GetAccountsByUserID(userID string) ([]*model.Account, error)
}

type AccountRepository struct {
	Store *store.Store
}

func NewAccountRepository(s *store.Store) *AccountRepository {
	return &AccountRepository{Store: s}
}

// GetAccountsByUserID retrieves all accounts owned by a user, in store
// order.
func (r *AccountRepository) GetAccountsByUserID(userID string) ([]*model.Account, error) {
	var accounts []*model.Account
	for _, acc := range r.Store.Accounts() {
		if acc.UserID == userID {
			accounts = append(accounts, acc)
		}
	}
	logger.Log.WithField("user_id", userID).WithField("count", len(accounts)).Debug("Fetched accounts by user ID")
	return accounts, nil
}

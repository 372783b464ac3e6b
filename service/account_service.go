package service

import (
	"mock-bank-api/model"
	"mock-bank-api/repository"
)

type AccountService struct {
	repo repository.IAccountRepository
}

func NewAccountService(repo repository.IAccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// ListAccountsForUser returns the caller's accounts in store order. A
// user with zero accounts gets an empty list, not an error.
func (s *AccountService) ListAccountsForUser(userID string) ([]*model.Account, error) {
	return s.repo.GetAccountsByUserID(userID)
}

// service/account_service_test.go
package service

import (
	"testing"

	"mock-bank-api/model"

	"github.com/stretchr/testify/assert"
)

func TestAccountService_ListAccountsForUser(t *testing.T) {
	t.Run("returns the repository result in store order", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		expected := userAccounts()
		mockRepo.On("GetAccountsByUserID", "user-1").Return(expected, nil).Once()

		accountService := NewAccountService(mockRepo)
		accounts, err := accountService.ListAccountsForUser("user-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, accounts)
		mockRepo.AssertExpectations(t)
	})

	t.Run("zero accounts is not an error", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockRepo.On("GetAccountsByUserID", "user-9").Return([]*model.Account{}, nil).Once()

		accountService := NewAccountService(mockRepo)
		accounts, err := accountService.ListAccountsForUser("user-9")

		assert.NoError(t, err)
		assert.Empty(t, accounts)
	})
}

// service/transaction_service_test.go
package service

import (
	"os"
	"testing"
	"time"

	"mock-bank-api/logger"
	"mock-bank-api/model"
	"mock-bank-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockAccountRepository is a mock for IAccountRepository.
type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) GetAccountsByUserID(userID string) ([]*model.Account, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

// MockTransactionRepository is a mock for ITransactionRepository.
type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) GetTransactionByID(id string) (*model.Transaction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactionsByAccountIDs(accountIDs []string) ([]*model.Transaction, error) {
	args := m.Called(accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(tx *model.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func userAccounts() []*model.Account {
	return []*model.Account{
		{ID: "acc-1", UserID: "user-1", Type: model.AccountTypeChecking},
		{ID: "acc-2", UserID: "user-1", Type: model.AccountTypeSavings},
	}
}

func TestTransactionService_ListTransactionsForUser(t *testing.T) {
	unsorted := []*model.Transaction{
		{ID: "t-old", AccountID: "acc-1", Amount: -5, Type: model.TransactionDebit, Date: "2025-01-01T00:00:00Z"},
		{ID: "t-new", AccountID: "acc-2", Amount: 10, Type: model.TransactionCredit, Date: "2025-03-01T00:00:00Z"},
		{ID: "t-mid", AccountID: "acc-1", Amount: -7, Type: model.TransactionDebit, Date: "2025-02-01T00:00:00Z"},
	}

	t.Run("sorted newest first", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("GetTransactionsByAccountIDs", []string{"acc-1", "acc-2"}).Return(unsorted, nil).Once()

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)
		transactions, err := svc.ListTransactionsForUser("user-1", 0)

		assert.NoError(t, err)
		assert.Len(t, transactions, 3)
		assert.Equal(t, "t-new", transactions[0].ID)
		assert.Equal(t, "t-mid", transactions[1].ID)
		assert.Equal(t, "t-old", transactions[2].ID)
		mockAccountRepo.AssertExpectations(t)
		mockTxnRepo.AssertExpectations(t)
	})

	t.Run("limit truncates", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("GetTransactionsByAccountIDs", mock.Anything).Return(unsorted, nil).Once()

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)
		transactions, err := svc.ListTransactionsForUser("user-1", 2)

		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
		assert.Equal(t, "t-new", transactions[0].ID)
	})

	t.Run("limit defaults to 50 and caps at 100", func(t *testing.T) {
		many := make([]*model.Transaction, 0, 120)
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 120; i++ {
			many = append(many, &model.Transaction{
				ID:        "t",
				AccountID: "acc-1",
				Amount:    -1,
				Type:      model.TransactionDebit,
				Date:      base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			})
		}

		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil)
		mockTxnRepo.On("GetTransactionsByAccountIDs", mock.Anything).Return(many, nil)

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)

		transactions, err := svc.ListTransactionsForUser("user-1", 0)
		assert.NoError(t, err)
		assert.Len(t, transactions, 50)

		transactions, err = svc.ListTransactionsForUser("user-1", -3)
		assert.NoError(t, err)
		assert.Len(t, transactions, 50)

		transactions, err = svc.ListTransactionsForUser("user-1", 500)
		assert.NoError(t, err)
		assert.Len(t, transactions, 100)
	})

	t.Run("unparsable dates sort last without crashing", func(t *testing.T) {
		withBadDate := []*model.Transaction{
			{ID: "t-bad", AccountID: "acc-1", Amount: -1, Type: model.TransactionDebit, Date: "not-a-date"},
			{ID: "t-good", AccountID: "acc-1", Amount: -1, Type: model.TransactionDebit, Date: "2025-02-01T00:00:00Z"},
		}
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("GetTransactionsByAccountIDs", mock.Anything).Return(withBadDate, nil).Once()

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)
		transactions, err := svc.ListTransactionsForUser("user-1", 0)

		assert.NoError(t, err)
		assert.Equal(t, "t-good", transactions[0].ID)
		assert.Equal(t, "t-bad", transactions[1].ID)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockAccountRepo.On("GetAccountsByUserID", "user-9").Return([]*model.Account{}, nil).Once()
		mockTxnRepo.On("GetTransactionsByAccountIDs", mock.Anything).Return([]*model.Transaction(nil), nil).Once()

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)
		transactions, err := svc.ListTransactionsForUser("user-9", 0)

		assert.NoError(t, err)
		assert.NotNil(t, transactions)
		assert.Len(t, transactions, 0)
	})
}

func TestTransactionService_GetTransactionForUser(t *testing.T) {
	owned := &model.Transaction{ID: "tx-1", AccountID: "acc-1", Amount: -10, Type: model.TransactionDebit}
	foreign := &model.Transaction{ID: "tx-2", AccountID: "acc-99", Amount: -10, Type: model.TransactionDebit}

	t.Run("owned transaction is returned", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockTxnRepo.On("GetTransactionByID", "tx-1").Return(owned, nil).Once()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)
		tx, err := svc.GetTransactionForUser("user-1", "tx-1")

		assert.NoError(t, err)
		assert.Equal(t, owned, tx)
	})

	t.Run("missing and foreign transactions are indistinguishable", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		mockTxnRepo.On("GetTransactionByID", "tx-404").Return(nil, repository.ErrNotFound).Once()
		mockTxnRepo.On("GetTransactionByID", "tx-2").Return(foreign, nil).Once()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()

		svc := NewTransactionService(mockAccountRepo, mockTxnRepo)

		_, missingErr := svc.GetTransactionForUser("user-1", "tx-404")
		_, foreignErr := svc.GetTransactionForUser("user-1", "tx-2")

		assert.Equal(t, ErrTransactionNotFound, missingErr)
		assert.Equal(t, ErrTransactionNotFound, foreignErr)
	})
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	newService := func() (*TransactionService, *MockAccountRepository, *MockTransactionRepository) {
		mockAccountRepo := new(MockAccountRepository)
		mockTxnRepo := new(MockTransactionRepository)
		return NewTransactionService(mockAccountRepo, mockTxnRepo), mockAccountRepo, mockTxnRepo
	}

	t.Run("debit stores negative absolute value on the first account", func(t *testing.T) {
		svc, mockAccountRepo, mockTxnRepo := newService()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("CreateTransaction", mock.AnythingOfType("*model.Transaction")).Return(nil).Once()

		tx, err := svc.CreateTransaction("user-1", model.CreateTransactionRequest{
			Amount:      25.5,
			Type:        "debit",
			Description: "Test purchase",
		})

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", tx.AccountID)
		assert.Equal(t, -25.5, tx.Amount)
		assert.Equal(t, model.TransactionDebit, tx.Type)
		assert.Equal(t, "Test purchase", tx.Description)
		assert.Equal(t, "other", tx.Category)
		assert.Equal(t, "Test purchase", tx.Merchant)
		mockTxnRepo.AssertExpectations(t)
	})

	t.Run("credit discards the caller-supplied sign", func(t *testing.T) {
		svc, mockAccountRepo, mockTxnRepo := newService()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("CreateTransaction", mock.AnythingOfType("*model.Transaction")).Return(nil).Once()

		tx, err := svc.CreateTransaction("user-1", model.CreateTransactionRequest{
			Amount: -300.0,
			Type:   "credit",
		})

		assert.NoError(t, err)
		assert.Equal(t, 300.0, tx.Amount)
		assert.Equal(t, model.TransactionCredit, tx.Type)
	})

	t.Run("unknown type maps to debit", func(t *testing.T) {
		svc, mockAccountRepo, mockTxnRepo := newService()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("CreateTransaction", mock.AnythingOfType("*model.Transaction")).Return(nil).Once()

		tx, err := svc.CreateTransaction("user-1", model.CreateTransactionRequest{Amount: 10.0, Type: "CREDIT"})

		assert.NoError(t, err)
		assert.Equal(t, model.TransactionDebit, tx.Type)
		assert.Equal(t, -10.0, tx.Amount)
	})

	t.Run("string amounts are coerced", func(t *testing.T) {
		svc, mockAccountRepo, mockTxnRepo := newService()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("CreateTransaction", mock.AnythingOfType("*model.Transaction")).Return(nil).Once()

		tx, err := svc.CreateTransaction("user-1", model.CreateTransactionRequest{Amount: "42.75"})

		assert.NoError(t, err)
		assert.Equal(t, -42.75, tx.Amount)
	})

	t.Run("defaults fill empty fields", func(t *testing.T) {
		svc, mockAccountRepo, mockTxnRepo := newService()
		mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()
		mockTxnRepo.On("CreateTransaction", mock.AnythingOfType("*model.Transaction")).Return(nil).Once()

		tx, err := svc.CreateTransaction("user-1", model.CreateTransactionRequest{Amount: 5.0, Type: "credit"})

		assert.NoError(t, err)
		assert.Equal(t, "Transaction", tx.Description)
		assert.Equal(t, "other", tx.Category)
		assert.Equal(t, "Transaction", tx.Merchant)
		_, parseErr := time.Parse(time.RFC3339, tx.Date)
		assert.NoError(t, parseErr)
	})

	t.Run("invalid amounts are rejected before any append", func(t *testing.T) {
		for _, amount := range []any{0.0, "zero", "", nil, true} {
			svc, mockAccountRepo, mockTxnRepo := newService()
			mockAccountRepo.On("GetAccountsByUserID", "user-1").Return(userAccounts(), nil).Once()

			_, err := svc.CreateTransaction("user-1", model.CreateTransactionRequest{Amount: amount})

			assert.Equal(t, ErrInvalidAmount, err, "amount %#v should be invalid", amount)
			mockTxnRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything)
		}
	})

	t.Run("no accounts fails before amount validation", func(t *testing.T) {
		svc, mockAccountRepo, mockTxnRepo := newService()
		mockAccountRepo.On("GetAccountsByUserID", "user-9").Return([]*model.Account{}, nil).Once()

		_, err := svc.CreateTransaction("user-9", model.CreateTransactionRequest{Amount: 0.0})

		assert.Equal(t, ErrNoAccountForUser, err)
		mockTxnRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything)
	})
}

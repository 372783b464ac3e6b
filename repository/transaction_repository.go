package repository

import (
	"mock-bank-api/logger"
	"mock-bank-api/model"
	"mock-bank-api/store"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction reads
// and the append-only write.
type ITransactionRepository interface {
	GetTransactionByID(id string) (*model.Transaction, error)
	GetTransactionsByAccountIDs(accountIDs []string) ([]*model.Transaction, error)
	CreateTransaction(tx *model.Transaction) error
}

type TransactionRepository struct {
	Store *store.Store
}

func NewTransactionRepository(s *store.Store) *TransactionRepository {
	return &TransactionRepository{Store: s}
}

// GetTransactionByID looks up a transaction with no ownership check;
// scoping is the service's job.
func (r *TransactionRepository) GetTransactionByID(id string) (*model.Transaction, error) {
	for _, tx := range r.Store.Transactions() {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, ErrNotFound
}

// GetTransactionsByAccountIDs retrieves the transactions belonging to
// any of the given accounts, in store order.
func (r *TransactionRepository) GetTransactionsByAccountIDs(accountIDs []string) ([]*model.Transaction, error) {
	ids := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		ids[id] = struct{}{}
	}

	var transactions []*model.Transaction
	for _, tx := range r.Store.Transactions() {
		if _, ok := ids[tx.AccountID]; ok {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

// CreateTransaction appends the record; the store assigns its id.
func (r *TransactionRepository) CreateTransaction(tx *model.Transaction) error {
	r.Store.AppendTransaction(tx)
	logger.Log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"account_id":     tx.AccountID,
		"amount":         tx.Amount,
	}).Info("Appended transaction to store")
	return nil
}

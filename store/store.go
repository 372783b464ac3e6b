package store

import (
	"fmt"
	"sync"

	"mock-bank-api/logger"
	"mock-bank-api/model"

	"github.com/sirupsen/logrus"
)

// Store holds the seeded in-memory collections. Users and accounts are
// immutable after load; transactions are append-only behind the mutex.
// It is an injected dependency, so tests get isolated instances.
type Store struct {
	mu           sync.RWMutex
	users        []*model.User
	accounts     []*model.Account
	transactions []*model.Transaction
	txSeq        int
}

// NewSeeded builds a store loaded with the fixture data set. Seed
// passwords are hashed on the way in, which is the only step that can
// fail.
func NewSeeded() (*Store, error) {
	users, err := seedUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	s := &Store{
		users:        users,
		accounts:     seedAccounts(),
		transactions: seedTransactions(),
	}
	s.txSeq = len(s.transactions)

	logger.Log.WithFields(logrus.Fields{
		"users":        len(s.users),
		"accounts":     len(s.accounts),
		"transactions": len(s.transactions),
	}).Info("In-memory store seeded")

	return s, nil
}

// Users returns the user collection. Callers must treat it as
// read-only.
func (s *Store) Users() []*model.User {
	return s.users
}

// Accounts returns the account collection in insertion order. Callers
// must treat it as read-only.
func (s *Store) Accounts() []*model.Account {
	return s.accounts
}

// Transactions returns a snapshot of the transaction collection, so
// callers can sort and slice it without holding the lock.
func (s *Store) Transactions() []*model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// AppendTransaction assigns the next id and appends the record. Id
// generation and append happen under a single write lock so concurrent
// creations can neither collide nor lose updates.
func (s *Store) AppendTransaction(tx *model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txSeq++
	tx.ID = fmt.Sprintf("tx-%03d", s.txSeq)
	s.transactions = append(s.transactions, tx)
}

package service

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"mock-bank-api/logger"
	"mock-bank-api/model"
	"mock-bank-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNoAccountForUser    = errors.New("no account found for user")
	ErrInvalidAmount       = errors.New("invalid amount")
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type TransactionService struct {
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
}

func NewTransactionService(accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// ListTransactionsForUser returns the caller's transactions across all
// owned accounts, newest first. A limit outside 1..100 falls back to
// the default of 50; anything above 100 is capped.
func (s *TransactionService) ListTransactionsForUser(userID string, limit int) ([]*model.Transaction, error) {
	accounts, err := s.accountRepo.GetAccountsByUserID(userID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		accountIDs = append(accountIDs, acc.ID)
	}

	transactions, err := s.transactionRepo.GetTransactionsByAccountIDs(accountIDs)
	if err != nil {
		return nil, err
	}

	// Unparsable dates collapse to the zero time and sort oldest; ties
	// keep store order.
	sort.SliceStable(transactions, func(i, j int) bool {
		return parseDate(transactions[i].Date).After(parseDate(transactions[j].Date))
	})

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	if transactions == nil {
		transactions = []*model.Transaction{}
	}
	return transactions, nil
}

func parseDate(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetTransactionForUser looks up a transaction by id. A transaction
// owned by another user is reported exactly like a missing one, so
// existence never leaks across users.
func (s *TransactionService) GetTransactionForUser(userID, transactionID string) (*model.Transaction, error) {
	tx, err := s.transactionRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, ErrTransactionNotFound
	}

	accounts, err := s.accountRepo.GetAccountsByUserID(userID)
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		if acc.ID == tx.AccountID {
			return tx, nil
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": transactionID,
	}).Warn("Transaction lookup denied for non-owner")
	return nil, ErrTransactionNotFound
}

// CreateTransaction validates and normalizes the payload, then appends
// the record to the caller's first account in store order.
func (s *TransactionService) CreateTransaction(userID string, req model.CreateTransactionRequest) (*model.Transaction, error) {
	accounts, err := s.accountRepo.GetAccountsByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccountForUser
	}
	account := accounts[0]

	amount, ok := coerceAmount(req.Amount)
	if !ok || amount == 0 {
		return nil, ErrInvalidAmount
	}

	txType := model.TransactionDebit
	if req.Type == "credit" {
		txType = model.TransactionCredit
	}

	// The caller-supplied sign is discarded; only the magnitude
	// matters, and the sign follows the type.
	finalAmount := math.Abs(amount)
	if txType == model.TransactionDebit {
		finalAmount = -finalAmount
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Transaction"
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "other"
	}
	merchant := strings.TrimSpace(req.Merchant)
	if merchant == "" {
		merchant = description
	}

	tx := &model.Transaction{
		AccountID:   account.ID,
		Amount:      finalAmount,
		Type:        txType,
		Description: description,
		Category:    category,
		Date:        time.Now().UTC().Format(time.RFC3339),
		Merchant:    merchant,
	}

	if err := s.transactionRepo.CreateTransaction(tx); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"account_id":     account.ID,
		"amount":         tx.Amount,
		"type":           tx.Type,
	}).Info("Transaction created")
	return tx, nil
}

// coerceAmount accepts the JSON number and string representations of
// an amount. Anything else is not a number.
func coerceAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

package model

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// Account belongs to exactly one user. Balance is a point-in-time
// figure and is not recomputed from the transaction history; credit
// accounts may carry a negative balance.
type Account struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Balance  float64     `json:"balance"`
	Currency string      `json:"currency"`
	LastFour string      `json:"lastFour"`
}

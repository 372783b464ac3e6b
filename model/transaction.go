package model

type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

// Transaction belongs to exactly one account. The amount sign always
// agrees with the type: debits are negative, credits positive, never
// zero. Date is kept as the RFC 3339 string it arrives with; ordering
// parses it at read time.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
}

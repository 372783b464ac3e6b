package store

import (
	"mock-bank-api/model"

	"golang.org/x/crypto/bcrypt"
)

// Fixture data for the demo backend. In a real system this would come
// from a database; here the whole point is a self-contained process.

type seedUser struct {
	id, email, password, firstName, lastName string
}

var userSeed = []seedUser{
	{"user-001", "demo@bank.com", "demo123", "Avi", "Demo"},
	{"user-002", "maya@bank.com", "maya123", "Maya", "Cohen"},
	{"user-003", "david@bank.com", "david123", "David", "Levi"},
}

// seedUsers hashes the fixture passwords so plaintext never sits in
// memory after load. Login still behaves as an exact, case-sensitive
// credential match.
func seedUsers() ([]*model.User, error) {
	users := make([]*model.User, 0, len(userSeed))
	for _, u := range userSeed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users = append(users, &model.User{
			ID:           u.id,
			Email:        u.email,
			PasswordHash: string(hash),
			FirstName:    u.firstName,
			LastName:     u.lastName,
		})
	}
	return users, nil
}

func seedAccounts() []*model.Account {
	return []*model.Account{
		{ID: "acc-001", UserID: "user-001", Name: "Main Account", Type: model.AccountTypeChecking, Balance: 12450.75, Currency: "ILS", LastFour: "4521"},
		{ID: "acc-002", UserID: "user-001", Name: "Savings", Type: model.AccountTypeSavings, Balance: 85000.0, Currency: "ILS", LastFour: "7832"},
		{ID: "acc-003", UserID: "user-001", Name: "Family Account", Type: model.AccountTypeChecking, Balance: 3200.5, Currency: "ILS", LastFour: "1098"},
		{ID: "acc-004", UserID: "user-001", Name: "USD Account", Type: model.AccountTypeChecking, Balance: 1500.0, Currency: "USD", LastFour: "5544"},
		{ID: "acc-005", UserID: "user-001", Name: "Euro Account", Type: model.AccountTypeSavings, Balance: 2200.0, Currency: "EUR", LastFour: "6612"},
		{ID: "acc-006", UserID: "user-001", Name: "Credit Card", Type: model.AccountTypeCredit, Balance: -1200.25, Currency: "ILS", LastFour: "3345"},
		{ID: "acc-007", UserID: "user-002", Name: "Business Checking", Type: model.AccountTypeChecking, Balance: 45670.0, Currency: "ILS", LastFour: "9012"},
		{ID: "acc-008", UserID: "user-002", Name: "Emergency Fund", Type: model.AccountTypeSavings, Balance: 25000.0, Currency: "ILS", LastFour: "2789"},
		{ID: "acc-009", UserID: "user-003", Name: "Holiday Savings", Type: model.AccountTypeSavings, Balance: 5800.0, Currency: "ILS", LastFour: "4433"},
		{ID: "acc-010", UserID: "user-003", Name: "Secondary Checking", Type: model.AccountTypeChecking, Balance: 890.0, Currency: "ILS", LastFour: "6677"},
	}
}

func seedTransactions() []*model.Transaction {
	return []*model.Transaction{
		{ID: "tx-001", AccountID: "acc-001", Amount: -89.5, Type: model.TransactionDebit, Description: "Supermarket", Category: "groceries", Date: "2025-02-18T10:30:00Z", Merchant: "Shufersal"},
		{ID: "tx-002", AccountID: "acc-001", Amount: -45.0, Type: model.TransactionDebit, Description: "Coffee", Category: "food", Date: "2025-02-18T08:15:00Z", Merchant: "Cafe Cafe"},
		{ID: "tx-003", AccountID: "acc-001", Amount: 2500.0, Type: model.TransactionCredit, Description: "Salary", Category: "income", Date: "2025-02-15T00:00:00Z", Merchant: "Employer Ltd"},
		{ID: "tx-004", AccountID: "acc-001", Amount: -120.0, Type: model.TransactionDebit, Description: "Electricity", Category: "utilities", Date: "2025-02-14T12:00:00Z", Merchant: "IEC"},
		{ID: "tx-005", AccountID: "acc-001", Amount: -299.0, Type: model.TransactionDebit, Description: "Internet", Category: "utilities", Date: "2025-02-13T09:00:00Z", Merchant: "Bezeq"},
		{ID: "tx-006", AccountID: "acc-001", Amount: -55.0, Type: model.TransactionDebit, Description: "Pharmacy", Category: "health", Date: "2025-02-12T14:20:00Z", Merchant: "Super-Pharm"},
		{ID: "tx-007", AccountID: "acc-001", Amount: -180.0, Type: model.TransactionDebit, Description: "Restaurant", Category: "food", Date: "2025-02-11T19:45:00Z", Merchant: "Miznon"},
		{ID: "tx-008", AccountID: "acc-001", Amount: 500.0, Type: model.TransactionCredit, Description: "Transfer from savings", Category: "transfer", Date: "2025-02-10T11:00:00Z", Merchant: "Internal Transfer"},
		{ID: "tx-009", AccountID: "acc-001", Amount: -32.0, Type: model.TransactionDebit, Description: "Fuel", Category: "transport", Date: "2025-02-09T07:30:00Z", Merchant: "Paz"},
		{ID: "tx-010", AccountID: "acc-001", Amount: -199.0, Type: model.TransactionDebit, Description: "Streaming", Category: "entertainment", Date: "2025-02-08T00:00:00Z", Merchant: "Netflix"},
		{ID: "tx-011", AccountID: "acc-001", Amount: -67.0, Type: model.TransactionDebit, Description: "Books", Category: "shopping", Date: "2025-02-07T16:00:00Z", Merchant: "Steimatzky"},
		{ID: "tx-012", AccountID: "acc-001", Amount: -410.0, Type: model.TransactionDebit, Description: "Insurance", Category: "insurance", Date: "2025-02-05T00:00:00Z", Merchant: "Migdal"},
		{ID: "tx-013", AccountID: "acc-001", Amount: -89.5, Type: model.TransactionDebit, Description: "Supermarket", Category: "groceries", Date: "2025-02-04T18:00:00Z", Merchant: "Rami Levy"},
		{ID: "tx-014", AccountID: "acc-001", Amount: -22.0, Type: model.TransactionDebit, Description: "Parking", Category: "transport", Date: "2025-02-03T12:00:00Z", Merchant: "Pango"},
		{ID: "tx-015", AccountID: "acc-001", Amount: 2500.0, Type: model.TransactionCredit, Description: "Salary", Category: "income", Date: "2025-02-01T00:00:00Z", Merchant: "Employer Ltd"},
		{ID: "tx-016", AccountID: "acc-007", Amount: 12000.0, Type: model.TransactionCredit, Description: "Invoice paid", Category: "income", Date: "2025-02-17T14:00:00Z", Merchant: "Acme Ltd"},
		{ID: "tx-017", AccountID: "acc-007", Amount: -350.0, Type: model.TransactionDebit, Description: "Office supplies", Category: "shopping", Date: "2025-02-16T11:30:00Z", Merchant: "IKEA"},
		{ID: "tx-018", AccountID: "acc-007", Amount: -1200.0, Type: model.TransactionDebit, Description: "Payroll", Category: "utilities", Date: "2025-02-15T09:00:00Z", Merchant: "Bank Transfer"},
		{ID: "tx-019", AccountID: "acc-008", Amount: 2000.0, Type: model.TransactionCredit, Description: "Monthly deposit", Category: "transfer", Date: "2025-02-14T08:00:00Z", Merchant: "Internal Transfer"},
		{ID: "tx-020", AccountID: "acc-008", Amount: 15.5, Type: model.TransactionCredit, Description: "Interest", Category: "income", Date: "2025-02-10T00:00:00Z", Merchant: "Bank"},
		{ID: "tx-021", AccountID: "acc-009", Amount: 500.0, Type: model.TransactionCredit, Description: "Savings deposit", Category: "transfer", Date: "2025-02-18T16:00:00Z", Merchant: "Internal Transfer"},
		{ID: "tx-022", AccountID: "acc-009", Amount: 200.0, Type: model.TransactionCredit, Description: "Bonus", Category: "income", Date: "2025-02-12T12:00:00Z", Merchant: "Employer"},
		{ID: "tx-023", AccountID: "acc-010", Amount: -75.0, Type: model.TransactionDebit, Description: "Grocery", Category: "groceries", Date: "2025-02-17T18:45:00Z", Merchant: "Victory"},
		{ID: "tx-024", AccountID: "acc-010", Amount: -210.0, Type: model.TransactionDebit, Description: "Dental", Category: "health", Date: "2025-02-15T10:00:00Z", Merchant: "Dr. Smith"},
		{ID: "tx-025", AccountID: "acc-010", Amount: 890.0, Type: model.TransactionCredit, Description: "Salary", Category: "income", Date: "2025-02-01T00:00:00Z", Merchant: "Employer Ltd"},
	}
}

package model

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateTransactionRequest defines the payload for creating a
// transaction. Amount is untyped because callers may send it as a JSON
// number or a string; the service coerces it. Every other field is
// optional and normalized with defaults.
type CreateTransactionRequest struct {
	Amount      any    `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Merchant    string `json:"merchant"`
}

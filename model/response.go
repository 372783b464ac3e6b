package model

// LoginResponse is the successful login body: the bearer token plus
// the user record (password hash excluded by its JSON tag).
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type AccountListResponse struct {
	Accounts []*Account `json:"accounts"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

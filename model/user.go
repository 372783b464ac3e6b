package model

// User is an identity record. The password hash never leaves the
// process; only id, email and names are serialized.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

package service

import (
	"errors"
	"strings"
)

// ErrInvalidToken is returned when a bearer credential cannot be
// verified.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies bearer credentials. The interface
// keeps the handler boundary ready for a signed, expiring token
// implementation without touching the authorization checks.
type TokenService interface {
	Issue(userID string) string
	Verify(token string) (string, error)
}

// PrefixTokenService implements the demo credential scheme: a fixed
// prefix followed by the user id. It carries no signature or expiry,
// which is acceptable only for a fake backend.
type PrefixTokenService struct {
	prefix string
}

func NewPrefixTokenService(prefix string) *PrefixTokenService {
	return &PrefixTokenService{prefix: prefix}
}

func (s *PrefixTokenService) Issue(userID string) string {
	return s.prefix + userID
}

// Verify extracts the embedded user id. Any credential lacking the
// prefix, or carrying an empty id, fails identically.
func (s *PrefixTokenService) Verify(token string) (string, error) {
	if !strings.HasPrefix(token, s.prefix) {
		return "", ErrInvalidToken
	}
	userID := strings.TrimPrefix(token, s.prefix)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

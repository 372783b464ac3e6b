package service

import (
	"errors"

	"mock-bank-api/logger"
	"mock-bank-api/model"
	"mock-bank-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown email and wrong password,
// so the response cannot leak which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	userRepo repository.IUserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.IUserRepository, tokens TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Login authenticates a credential pair and issues a bearer token that
// encodes the user id.
func (s *AuthService) Login(email, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return &model.LoginResponse{
		Token: s.tokens.Issue(user.ID),
		User:  user,
	}, nil
}

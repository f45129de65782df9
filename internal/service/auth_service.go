package service

import (
	"errors"

	"wims/internal/auth"
	"wims/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthUserRepository is the slice of the user repository the login flow needs.
type AuthUserRepository interface {
	FindByLoginID(loginID string) (*models.User, error)
}

type AuthService struct {
	users  AuthUserRepository
	logger *zap.Logger
}

func NewAuthService(users AuthUserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Login returns the user iff a row with that login id exists and the password
// verifies against its stored hash. Every other combination fails with
// ErrInvalidCredentials and reveals nothing about which check failed.
func (s *AuthService) Login(loginID, password string) (*models.User, error) {
	if loginID == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Info("login rejected", zap.String("login_id", loginID))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("login ok",
		zap.String("login_id", loginID), zap.Stringer("role", user.Role))
	return user, nil
}

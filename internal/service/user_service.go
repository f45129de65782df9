package service

import (
	"errors"
	"strings"

	"wims/internal/auth"
	"wims/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository interface {
	ListWithDepartments() ([]models.User, error)
	FindByID(id uint) (*models.User, error)
	ExistsByLoginID(loginID string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
	Delete(user *models.User) error
}

// DepartmentLister feeds the department picker on the user form.
type DepartmentLister interface {
	ListByName() ([]models.Department, error)
}

// UserDraft is the typed form buffer for create/edit. Handlers coerce raw
// form strings into it; the service applies the rules.
type UserDraft struct {
	LoginID      string
	Password     string
	Email        string
	Name         string
	Role         *models.Role
	DepartmentID *uint // nil = unaffiliated
	Code         string
	IsActive     *bool
}

type UserService struct {
	users       UserRepository
	departments DepartmentLister
	logger      *zap.Logger
}

func NewUserService(users UserRepository, departments DepartmentLister, logger *zap.Logger) *UserService {
	return &UserService{users: users, departments: departments, logger: logger}
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.ListWithDepartments()
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DepartmentOptions() ([]models.Department, error) {
	return s.departments.ListByName()
}

// Create inserts a new user. Login id, email and password are required;
// login id and email must not collide with existing rows.
func (s *UserService) Create(draft UserDraft) (*models.User, error) {
	loginID := strings.TrimSpace(draft.LoginID)
	email := strings.TrimSpace(draft.Email)

	if loginID == "" || email == "" || draft.Password == "" {
		return nil, ErrValidation
	}

	if taken, err := s.users.ExistsByLoginID(loginID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateLoginID
	}
	if taken, err := s.users.ExistsByEmail(email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(draft.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		LoginID:      loginID,
		PasswordHash: hash,
		Email:        &email,
		Role:         models.RoleGeneralUser,
		DepartmentID: draft.DepartmentID,
		IsActive:     true,
	}
	if name := strings.TrimSpace(draft.Name); name != "" {
		user.Name = &name
	}
	if draft.Role != nil {
		user.Role = *draft.Role
	}
	// empty code stays NULL so the unique index never sees two empty strings
	if code := strings.TrimSpace(draft.Code); code != "" {
		user.Code = &code
	}
	if draft.IsActive != nil {
		user.IsActive = *draft.IsActive
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.Uint("id", user.ID), zap.String("login_id", user.LoginID))
	return &user, nil
}

// Update edits an existing user. Login id, password and timestamps are never
// touched here; the department link may be cleared.
func (s *UserService) Update(id uint, draft UserDraft) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(draft.Email); email != "" {
		user.Email = &email
	}
	if name := strings.TrimSpace(draft.Name); name != "" {
		user.Name = &name
	}
	if draft.Role != nil {
		user.Role = *draft.Role
	}
	user.DepartmentID = draft.DepartmentID
	if code := strings.TrimSpace(draft.Code); code != "" {
		user.Code = &code
	} else {
		user.Code = nil
	}
	if draft.IsActive != nil {
		user.IsActive = *draft.IsActive
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Uint("id", user.ID))
	return user, nil
}

// Delete removes a user row. Admin accounts are protected.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return ErrProtectedRole
	}
	if err := s.users.Delete(user); err != nil {
		return err
	}

	s.logger.Info("user deleted",
		zap.Uint("id", id), zap.String("login_id", user.LoginID))
	return nil
}

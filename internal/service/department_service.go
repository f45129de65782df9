package service

import (
	"errors"
	"strings"

	"wims/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	ListByName() ([]models.Department, error)
	FindByID(id uint) (*models.Department, error)
	ExistsByCode(code string) (bool, error)
	ExistsByName(name string) (bool, error)
	Create(department *models.Department) error
	Save(department *models.Department) error
	Delete(department *models.Department) error
}

// UserCounter is the slice of the user repository the dependent-user guard needs.
type UserCounter interface {
	CountByDepartment(departmentID uint) (int64, error)
}

// DepartmentDraft is the typed form buffer for department create/edit.
type DepartmentDraft struct {
	Code      string
	Name      string
	Notes     string
	SortOrder *int
	SiteList  []int64
}

type DepartmentService struct {
	departments DepartmentRepository
	users       UserCounter
	logger      *zap.Logger
}

func NewDepartmentService(departments DepartmentRepository, users UserCounter, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, users: users, logger: logger}
}

func (s *DepartmentService) List() ([]models.Department, error) {
	return s.departments.ListByName()
}

func (s *DepartmentService) Get(id uint) (*models.Department, error) {
	department, err := s.departments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return department, nil
}

// Create inserts a new department. Code and name are required and must each
// be unique across all departments.
func (s *DepartmentService) Create(draft DepartmentDraft) (*models.Department, error) {
	code := strings.TrimSpace(draft.Code)
	name := strings.TrimSpace(draft.Name)

	if code == "" || name == "" {
		return nil, ErrValidation
	}

	if taken, err := s.departments.ExistsByCode(code); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateCode
	}
	if taken, err := s.departments.ExistsByName(name); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateName
	}

	department := models.Department{
		Code:      code,
		Name:      name,
		SortOrder: draft.SortOrder,
		SiteList:  draft.SiteList,
	}
	if notes := strings.TrimSpace(draft.Notes); notes != "" {
		department.Notes = &notes
	}

	if err := s.departments.Create(&department); err != nil {
		return nil, err
	}

	s.logger.Info("department created",
		zap.Uint("id", department.ID), zap.String("code", department.Code))
	return &department, nil
}

// Update edits name, notes, sort order and site list. The code is immutable
// after creation.
func (s *DepartmentService) Update(id uint, draft DepartmentDraft) (*models.Department, error) {
	department, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(draft.Name); name != "" {
		department.Name = name
	}
	if notes := strings.TrimSpace(draft.Notes); notes != "" {
		department.Notes = &notes
	}
	if draft.SortOrder != nil {
		department.SortOrder = draft.SortOrder
	}
	if draft.SiteList != nil {
		department.SiteList = draft.SiteList
	}

	if err := s.departments.Save(department); err != nil {
		return nil, err
	}

	s.logger.Info("department updated", zap.Uint("id", department.ID))
	return department, nil
}

// Delete removes a department unless any user still references it.
func (s *DepartmentService) Delete(id uint) error {
	count, err := s.users.CountByDepartment(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasDependents
	}

	department, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.departments.Delete(department); err != nil {
		return err
	}

	s.logger.Info("department deleted",
		zap.Uint("id", id), zap.String("code", department.Code))
	return nil
}

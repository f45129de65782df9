package service

import (
	"wims/internal/models"

	"gorm.io/gorm"
)

// mockUserRepo is a hand-written stand-in for the user repository.
type mockUserRepo struct {
	list          []models.User
	listErr       error
	byID          map[uint]*models.User
	existsLoginID bool
	existsEmail   bool
	existsErr     error

	created *models.User
	saved   *models.User
	deleted *models.User

	createErr error
	saveErr   error
	deleteErr error

	departmentCount int64
}

func (m *mockUserRepo) ListWithDepartments() ([]models.User, error) {
	return m.list, m.listErr
}

func (m *mockUserRepo) FindByID(id uint) (*models.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByLoginID(loginID string) (*models.User, error) {
	for _, u := range m.byID {
		if u.LoginID == loginID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByLoginID(string) (bool, error) {
	return m.existsLoginID, m.existsErr
}

func (m *mockUserRepo) ExistsByEmail(string) (bool, error) {
	return m.existsEmail, m.existsErr
}

func (m *mockUserRepo) CountByDepartment(uint) (int64, error) {
	return m.departmentCount, nil
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepo) Save(user *models.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = user
	return nil
}

func (m *mockUserRepo) Delete(user *models.User) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = user
	return nil
}

// mockDeptRepo is a hand-written stand-in for the department repository.
type mockDeptRepo struct {
	list       []models.Department
	listErr    error
	byID       map[uint]*models.Department
	existsCode bool
	existsName bool
	existsErr  error

	created *models.Department
	saved   *models.Department
	deleted *models.Department
}

func (m *mockDeptRepo) ListByName() ([]models.Department, error) {
	return m.list, m.listErr
}

func (m *mockDeptRepo) FindByID(id uint) (*models.Department, error) {
	if d, ok := m.byID[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) ExistsByCode(string) (bool, error) {
	return m.existsCode, m.existsErr
}

func (m *mockDeptRepo) ExistsByName(string) (bool, error) {
	return m.existsName, m.existsErr
}

func (m *mockDeptRepo) Create(department *models.Department) error {
	department.ID = 1
	m.created = department
	return nil
}

func (m *mockDeptRepo) Save(department *models.Department) error {
	m.saved = department
	return nil
}

func (m *mockDeptRepo) Delete(department *models.Department) error {
	m.deleted = department
	return nil
}

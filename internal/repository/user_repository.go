package repository

import (
	"wims/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListWithDepartments returns all users ordered by id ascending with the
// department association eagerly loaded.
func (r *UserRepository) ListWithDepartments() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Department").Order("id asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByLoginID(loginID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("login_id = ?", loginID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByLoginID(loginID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("login_id = ?", loginID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) CountByDepartment(departmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) Delete(user *models.User) error {
	return r.db.Delete(user).Error
}

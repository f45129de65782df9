package repository

import (
	"wims/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// ListByName returns all departments ordered by name ascending.
func (r *DepartmentRepository) ListByName() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("name asc").Find(&departments).Error
	return departments, err
}

func (r *DepartmentRepository) FindByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *DepartmentRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Department{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *DepartmentRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Department{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

func (r *DepartmentRepository) Save(department *models.Department) error {
	return r.db.Save(department).Error
}

func (r *DepartmentRepository) Delete(department *models.Department) error {
	return r.db.Delete(department).Error
}

package database

import (
	"wims/internal/auth"
	"wims/internal/models"
)

// EnsureAdmin creates the seed admin account if no user with the given login
// id exists yet. Safe to run repeatedly; returns true when a row was created.
func EnsureAdmin(loginID, password, email string) (bool, error) {
	var count int64
	if err := DB.Model(&models.User{}).
		Where("login_id = ?", loginID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	name := "Administrator"
	admin := models.User{
		LoginID:      loginID,
		PasswordHash: hash,
		Email:        &email,
		Name:         &name,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}

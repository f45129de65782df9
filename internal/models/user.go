package models

import "time"

// Role is stored as an integer in the DB. The numeric grouping (1x lab,
// 2x facility, 3x inventory) is cosmetic; roles are compared by identity only.
type Role int

const (
	RoleAdmin            Role = 1
	RoleLabManager       Role = 10
	RoleLabAnalyst       Role = 11
	RoleFacilityManager  Role = 20
	RoleInventoryManager Role = 30
	RoleGeneralUser      Role = 100
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleLabManager:
		return "LabManager"
	case RoleLabAnalyst:
		return "LabAnalyst"
	case RoleFacilityManager:
		return "FacilityManager"
	case RoleInventoryManager:
		return "InventoryManager"
	case RoleGeneralUser:
		return "GeneralUser"
	default:
		return "Unknown"
	}
}

// Roles returns every role in declaration order, for the role picker.
func Roles() []Role {
	return []Role{
		RoleAdmin,
		RoleLabManager,
		RoleLabAnalyst,
		RoleFacilityManager,
		RoleInventoryManager,
		RoleGeneralUser,
	}
}

// RoleFromValue converts a stored or submitted integer into a Role.
func RoleFromValue(v int) (Role, bool) {
	r := Role(v)
	switch r {
	case RoleAdmin, RoleLabManager, RoleLabAnalyst,
		RoleFacilityManager, RoleInventoryManager, RoleGeneralUser:
		return r, true
	}
	return 0, false
}

type User struct {
	ID           uint    `gorm:"primaryKey"`
	LoginID      string  `gorm:"column:login_id;size:50;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Email        *string `gorm:"size:100;uniqueIndex"`
	Name         *string `gorm:"size:100"`

	DepartmentID *uint
	Department   *Department

	Role     Role    `gorm:"type:integer;not null;default:100"`
	Code     *string `gorm:"size:16;uniqueIndex"`
	IsActive bool    `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "usr.users" }

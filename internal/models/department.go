package models

import "time"

type Department struct {
	ID        uint    `gorm:"primaryKey"`
	Code      string  `gorm:"size:4;uniqueIndex;not null"`
	Name      string  `gorm:"size:100;uniqueIndex;not null"`
	Notes     *string `gorm:"type:text"`
	SortOrder *int

	// Facility sites this department is responsible for.
	SiteList []int64 `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Users []User `gorm:"foreignKey:DepartmentID"`
}

func (Department) TableName() string { return "usr.departments" }

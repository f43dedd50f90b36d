package models

import "gorm.io/gorm"

// User represents a registered customer.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone      int64  `json:"phone" validate:"required,gte=1000000000,lte=9999999999"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	IsStaff    bool   `json:"is_staff"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

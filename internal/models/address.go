package models

import "gorm.io/gorm"

// Address is a delivery address owned by exactly one user.
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"index;type:varchar(36)"`
	Name       string `json:"name" validate:"required,max=255"`
	Address1   string `json:"address1" validate:"required,max=255"`
	Address2   string `json:"address2" validate:"max=255"`
	Pincode    int    `json:"pincode" validate:"required,gte=100000,lte=999999"`
	City       string `json:"city" validate:"required,max=255"`
	State      string `json:"state" validate:"required,max=255"`
	Country    string `json:"country" validate:"required,max=255"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

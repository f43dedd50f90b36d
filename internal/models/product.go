package models

import "gorm.io/gorm"

// Product categories.
const (
	CategoryJewellery = "JEWELLERY"
	CategoryCloth     = "CLOTH"
)

// Product represents a catalog item. Price and discount are integer amounts;
// stock must never go below zero.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,max=255"`
	Price       int     `json:"price" validate:"required,gt=0"`
	Discount    int     `json:"discount" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category" gorm:"type:varchar(50)" validate:"required,oneof=JEWELLERY CLOTH"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Photos      []Photo `json:"photos"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Photo is an image attached to a product.
type Photo struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"index;type:varchar(36)"`
	URL       string `json:"url" validate:"required,url"`
}

package repositories

import (
	"butik/internal/models"
)

// ProductFilter narrows a catalog listing. Filters apply in order: search,
// category, skip, first.
type ProductFilter struct {
	Search   string // case-insensitive substring match on name
	Category string // exact category match
	Skip     int
	First    int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

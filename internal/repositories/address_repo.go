package repositories

import "butik/internal/models"

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	Create(address *models.Address) error
	GetByID(id string) (*models.Address, error)
	GetByUser(userID string) ([]models.Address, error)
	Delete(id string) error
}

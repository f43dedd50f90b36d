package repositories

import (
	"butik/internal/models"
)

// OrderRepository defines the interface for order data access. Place runs the
// whole stock check-and-decrement plus order/line creation as one atomic unit
// against the store.
type OrderRepository interface {
	Place(userID string, lines []models.LineRequest) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
}

package repositories

import "butik/internal/models"

// CartRepository defines the interface for cart data access. The (user,
// product) pair is unique; reconciliation goes through Upsert so concurrent
// writers for the same pair cannot create duplicate rows.
type CartRepository interface {
	Upsert(userID, productID string, qty int) error
	Remove(userID, productID string) error
	GetByUser(userID string) ([]models.CartEntry, error)
}

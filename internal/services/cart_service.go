package services

import (
	"fmt"

	"butik/internal/models"
	"butik/internal/repositories"
)

// CartService reconciles a user's cart. Entries are keyed by (user, product);
// the store's unique index makes the upsert atomic.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// SetEntry sets the quantity for (userID, productID): a positive qty creates
// or overwrites the entry, qty <= 0 removes it (no-op when absent). Stock is
// never touched here; it only changes at order placement. Returns the
// caller's full cart after the change.
func (s *CartService) SetEntry(userID, productID string, qty int) ([]models.CartEntry, error) {
	if qty > 0 {
		if _, err := s.productRepo.GetByID(productID); err != nil {
			return nil, fmt.Errorf("cannot add to cart: %w", err)
		}
		if err := s.cartRepo.Upsert(userID, productID, qty); err != nil {
			return nil, err
		}
	} else {
		if err := s.cartRepo.Remove(userID, productID); err != nil {
			return nil, err
		}
	}
	return s.cartRepo.GetByUser(userID)
}

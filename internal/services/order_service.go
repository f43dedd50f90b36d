package services

import (
	"fmt"
	"log"

	"butik/internal/apperrors"
	"butik/internal/models"
	"butik/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events for downstream
// consumers (fulfillment, mail). Satisfied by *rabbitmq.Client.
type OrderEventPublisher interface {
	PublishOrderPlaced(event map[string]interface{}) error
}

// OrderService handles order placement and lookups.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher OrderEventPublisher // may be nil when messaging is disabled
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// PlaceOrder validates the requested lines and places the order atomically.
// Quantities below one and duplicate product ids are caller errors, rejected
// before any store work. Stock shortfalls surface as
// apperrors.ErrInsufficientStock with nothing committed.
func (s *OrderService) PlaceOrder(userID string, lines []models.LineRequest) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one line: %w", apperrors.ErrInvalidArgument)
	}
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if line.Qty < 1 {
			return nil, fmt.Errorf("quantity for product %s must be at least 1: %w",
				line.ProductID, apperrors.ErrInvalidArgument)
		}
		if seen[line.ProductID] {
			return nil, fmt.Errorf("product %s appears more than once: %w",
				line.ProductID, apperrors.ErrInvalidArgument)
		}
		seen[line.ProductID] = true
	}

	order, err := s.orderRepo.Place(userID, lines)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"order_id": order.ID,
			"user_id":  order.UserID,
			"status":   order.Status,
			"lines":    len(order.Lines),
		}
		if err := s.publisher.PublishOrderPlaced(event); err != nil {
			// The order is already committed; losing the event must not fail
			// the mutation.
			log.Printf("Warning: failed to publish order placed event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// Orders returns all orders owned by the caller.
func (s *OrderService) Orders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// Order returns a single order. Non-owners get apperrors.ErrForbidden.
func (s *OrderService) Order(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s is not owned by the caller: %w", orderID, apperrors.ErrForbidden)
	}
	return order, nil
}

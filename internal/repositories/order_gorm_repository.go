package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"butik/internal/apperrors"
	"butik/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Place creates the order header and its lines, decrementing product stock,
// inside a single transaction. Each product row is re-read under a row lock
// (SELECT ... FOR UPDATE on postgres) so concurrent placements against the
// same product serialize their check-and-decrement; any shortfall rolls the
// whole order back with apperrors.ErrInsufficientStock.
func (r *GORMOrderRepository) Place(userID string, lines []models.LineRequest) (*models.Order, error) {
	order := &models.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: models.OrderStatusOrdered,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order header: %w", err)
		}

		for _, line := range lines {
			q := tx
			if tx.Dialector.Name() == "postgres" {
				// sqlite has no FOR UPDATE; its single writer serializes us anyway.
				q = q.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var product models.Product
			if err := q.First(&product, "id = ?", line.ProductID).Error; err != nil {
				return fmt.Errorf("product %s: %w", line.ProductID, translateGormError(err))
			}

			if product.Stock < line.Qty {
				return fmt.Errorf("product %s has stock %d, requested %d: %w",
					product.ID, product.Stock, line.Qty, apperrors.ErrInsufficientStock)
			}

			err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
				Update("stock", gorm.Expr("stock - ?", line.Qty)).Error
			if err != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", product.ID, err)
			}

			orderLine := models.OrderLine{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Qty:       line.Qty,
			}
			if err := tx.Create(&orderLine).Error; err != nil {
				return fmt.Errorf("failed to create order line for product %s: %w",
					line.ProductID, translateGormError(err))
			}
			order.Lines = append(order.Lines, orderLine)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves an order with its lines.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("order with ID %s: %w", id, translateGormError(err))
	}
	return &order, nil
}

// GetByUser returns all orders owned by the user, newest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Lines").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// UpdateStatus advances the status of an order. Driven by the external
// fulfillment process, not by the operation surface.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s for status update: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

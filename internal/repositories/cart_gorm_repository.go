package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"butik/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Upsert creates or overwrites the entry for (userID, productID) in a single
// statement. The ON CONFLICT target is the unique (user_id, product_id)
// index, so two concurrent upserts for the same pair converge on one row.
func (r *GORMCartRepository) Upsert(userID, productID string, qty int) error {
	entry := models.CartEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Qty:       qty,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"qty":        qty,
			"updated_at": time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart entry for user %s product %s: %w", userID, productID, err)
	}
	return nil
}

// Remove deletes the entry for (userID, productID). Removing an absent entry
// is a no-op.
func (r *GORMCartRepository) Remove(userID, productID string) error {
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove cart entry for user %s product %s: %w", userID, productID, err)
	}
	return nil
}

// GetByUser returns the user's full cart in creation order.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return entries, nil
}

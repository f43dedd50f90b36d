package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"butik/internal/apperrors"
	"butik/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review. A second review for the same (user, product)
// pair fails on the unique index with apperrors.ErrConflict.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review for product %s: %w",
			review.ProductID, translateGormError(err))
	}
	return nil
}

// GetByID retrieves a review by its ID.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("review with ID %s: %w", id, translateGormError(err))
	}
	return &review, nil
}

// GetByProduct returns all reviews for a product in creation order.
func (r *GORMReviewRepository) GetByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("product_id = ?", productID).Order("created_at").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// Delete removes a review and its dependent likes in one transaction.
func (r *GORMReviewRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes of review %s: %w", id, err)
		}
		res := tx.Delete(&models.Review{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete review %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("review with ID %s for deletion: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
}

// AddLike inserts a like. Liking the same review twice fails on the unique
// (user, review) index with apperrors.ErrConflict.
func (r *GORMReviewRepository) AddLike(like *models.Like) error {
	if like.ID == "" {
		like.ID = uuid.New().String()
	}
	if err := r.db.Create(like).Error; err != nil {
		return fmt.Errorf("failed to like review %s: %w", like.ReviewID, translateGormError(err))
	}
	return nil
}

// RemoveLike deletes the caller's like of a review and returns it. An absent
// like is apperrors.ErrNotFound. The delete is a single conditional
// statement so two racing unlikes cannot both succeed.
func (r *GORMReviewRepository) RemoveLike(userID, reviewID string) (*models.Like, error) {
	var like models.Like
	res := r.db.Clauses(clause.Returning{}).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Delete(&like)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to unlike review %s: %w", reviewID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("like of review %s by user %s: %w",
			reviewID, userID, apperrors.ErrNotFound)
	}
	return &like, nil
}

// LikesCount returns the live cardinality of the review's like set.
func (r *GORMReviewRepository) LikesCount(reviewID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("review_id = ?", reviewID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes of review %s: %w", reviewID, err)
	}
	return count, nil
}

// IsLiked reports whether the user has liked the review.
func (r *GORMReviewRepository) IsLiked(userID, reviewID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND review_id = ?", userID, reviewID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like of review %s: %w", reviewID, err)
	}
	return count > 0, nil
}

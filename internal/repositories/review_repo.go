package repositories

import "butik/internal/models"

// ReviewRepository defines the interface for review and like data access.
// Like counts are computed from the like set at read time, never stored.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	GetByProduct(productID string) ([]models.Review, error)
	Delete(id string) error
	AddLike(like *models.Like) error
	RemoveLike(userID, reviewID string) (*models.Like, error)
	LikesCount(reviewID string) (int64, error)
	IsLiked(userID, reviewID string) (bool, error)
}

package models

import "time"

// Review is a product review. One review per (user, product); hard-deleted so
// a user can review again after deleting theirs.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_review_user_product;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_review_user_product;type:varchar(36)"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived at read time, never stored.
	LikesCount int64 `json:"likes_count" gorm:"-"`
	IsLiked    bool  `json:"is_liked" gorm:"-"`
}

// Like marks that a user liked a review. One like per (user, review).
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_like_user_review;type:varchar(36)"`
	ReviewID  string    `json:"review_id" gorm:"uniqueIndex:idx_like_user_review;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}

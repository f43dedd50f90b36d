package services

import (
	"fmt"

	"butik/internal/apperrors"
	"butik/internal/models"
	"butik/internal/repositories"
)

// ReviewService handles reviews and likes. One review per (user, product),
// one like per (user, review); both enforced by store constraints.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// AddReview creates a review by the caller. Ratings outside [1,5] are
// rejected; a second review for the same product fails with
// apperrors.ErrConflict.
func (s *ReviewService) AddReview(userID, productID string, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrInvalidArgument)
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, fmt.Errorf("cannot review: %w", err)
	}
	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Text:      text,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes the caller's review and all its likes. Only the
// author may delete.
func (s *ReviewService) DeleteReview(userID, reviewID string) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return fmt.Errorf("review %s was not written by the caller: %w", reviewID, apperrors.ErrForbidden)
	}
	return s.reviewRepo.Delete(reviewID)
}

// LikeReview records the caller's like. Liking twice fails with
// apperrors.ErrConflict.
func (s *ReviewService) LikeReview(userID, reviewID string) (*models.Like, error) {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		return nil, err
	}
	like := &models.Like{UserID: userID, ReviewID: reviewID}
	if err := s.reviewRepo.AddLike(like); err != nil {
		return nil, err
	}
	return like, nil
}

// UnlikeReview removes the caller's like and returns it. An absent like is
// apperrors.ErrNotFound.
func (s *ReviewService) UnlikeReview(userID, reviewID string) (*models.Like, error) {
	return s.reviewRepo.RemoveLike(userID, reviewID)
}

// ProductReviews returns a product's reviews with the like count computed
// from the live like set. callerID may be empty for anonymous readers; when
// present, each review carries whether the caller liked it.
func (s *ReviewService) ProductReviews(productID, callerID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		count, err := s.reviewRepo.LikesCount(reviews[i].ID)
		if err != nil {
			return nil, err
		}
		reviews[i].LikesCount = count

		if callerID != "" {
			liked, err := s.reviewRepo.IsLiked(callerID, reviews[i].ID)
			if err != nil {
				return nil, err
			}
			reviews[i].IsLiked = liked
		}
	}
	return reviews, nil
}

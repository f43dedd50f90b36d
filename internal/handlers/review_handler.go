package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"butik/internal/middleware"
	"butik/internal/services"
)

// ReviewHandler handles review and like routes.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the review routes. The router must already be
// gated by middleware.AuthRequired.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products/:id/reviews", h.HandleAddReview)

	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
	reviewRoutes.Post("/:id/like", h.HandleLikeReview)
	reviewRoutes.Delete("/:id/like", h.HandleUnlikeReview)
}

// AddReviewRequest represents the request body for adding a review.
type AddReviewRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text   string `json:"text" validate:"omitempty,max=2000"`
}

// HandleAddReview creates the caller's review of a product.
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	review, err := h.reviewService.AddReview(middleware.UserID(c), c.Params("id"), req.Rating, req.Text)
	if err != nil {
		log.Printf("Error adding review: %v", err)
		return errorResponse(c, "Could not add review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleDeleteReview deletes the caller's review and its likes.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	if err := h.reviewService.DeleteReview(middleware.UserID(c), reviewID); err != nil {
		log.Printf("Error deleting review %s: %v", reviewID, err)
		return errorResponse(c, "Could not delete review", err)
	}
	return c.JSON(fiber.Map{"id": reviewID})
}

// HandleLikeReview records the caller's like of a review.
func (h *ReviewHandler) HandleLikeReview(c *fiber.Ctx) error {
	like, err := h.reviewService.LikeReview(middleware.UserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error liking review: %v", err)
		return errorResponse(c, "Could not like review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": like.ID})
}

// HandleUnlikeReview removes the caller's like of a review.
func (h *ReviewHandler) HandleUnlikeReview(c *fiber.Ctx) error {
	like, err := h.reviewService.UnlikeReview(middleware.UserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error unliking review: %v", err)
		return errorResponse(c, "Could not unlike review", err)
	}
	return c.JSON(fiber.Map{"id": like.ID})
}

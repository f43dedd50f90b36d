package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"butik/internal/middleware"
	"butik/internal/services"
)

// CartHandler handles cart reconciliation.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes. The router must already be gated
// by middleware.AuthRequired.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Put("/cart", h.HandleSetCartEntry)
}

// SetCartRequest represents the request body for a cart upsert. Qty has no
// minimum: zero or negative removes the entry.
type SetCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty"`
}

// HandleSetCartEntry upserts the (caller, product) cart entry and returns
// the caller's full cart.
func (h *CartHandler) HandleSetCartEntry(c *fiber.Ctx) error {
	var req SetCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	cart, err := h.cartService.SetEntry(middleware.UserID(c), req.ProductID, req.Qty)
	if err != nil {
		log.Printf("Error setting cart entry: %v", err)
		return errorResponse(c, "Could not update cart", err)
	}
	return c.JSON(fiber.Map{"cart": cart})
}

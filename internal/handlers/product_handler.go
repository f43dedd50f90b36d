package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"butik/internal/middleware"
	"butik/internal/repositories"
	"butik/internal/services"
)

// ProductHandler handles the public catalog routes.
type ProductHandler struct {
	productService *services.ProductService
	reviewService  *services.ReviewService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, reviewService *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		reviewService:  reviewService,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// HandleListProducts lists products. Filters apply in order: search
// (case-insensitive substring on name), category (exact), skip, first.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Skip:     c.QueryInt("skip"),
		First:    c.QueryInt("first"),
	}

	products, err := h.productService.ListProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return errorResponse(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID returns a single product with its reviews. Review like
// counts are live; is_liked is filled for signed-in callers.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")

	product, err := h.productService.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product %s: %v", productID, err)
		return errorResponse(c, "Could not retrieve product", err)
	}

	reviews, err := h.reviewService.ProductReviews(productID, middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting reviews for product %s: %v", productID, err)
		return errorResponse(c, "Could not retrieve reviews", err)
	}

	return c.JSON(fiber.Map{
		"product": product,
		"reviews": reviews,
	})
}

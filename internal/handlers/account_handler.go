package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"butik/internal/middleware"
	"butik/internal/models"
	"butik/internal/services"
)

// AccountHandler handles self-service routes for the authenticated identity.
type AccountHandler struct {
	accountService *services.AccountService
	validate       *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the account routes. The router must already be
// gated by middleware.AuthRequired.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/me", h.HandleMe)
	router.Patch("/me", h.HandleUpdateSelf)
	router.Put("/me/password", h.HandleUpdatePassword)

	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleListAddresses)
	addressRoutes.Post("/", h.HandleCreateAddress)
	addressRoutes.Delete("/:id", h.HandleDeleteAddress)
}

// HandleMe returns the caller's identity and cart.
func (h *AccountHandler) HandleMe(c *fiber.Ctx) error {
	user, cart, err := h.accountService.Me(middleware.UserID(c))
	if err != nil {
		log.Printf("Error resolving identity: %v", err)
		return errorResponse(c, "Could not resolve identity", err)
	}
	return c.JSON(fiber.Map{
		"user": user,
		"cart": cart,
	})
}

// UpdateSelfRequest is a partial update: nil fields stay unchanged.
type UpdateSelfRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Phone *int64  `json:"phone" validate:"omitempty,gte=1000000000,lte=9999999999"`
}

// HandleUpdateSelf applies a partial profile update.
func (h *AccountHandler) HandleUpdateSelf(c *fiber.Ctx) error {
	var req UpdateSelfRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.accountService.UpdateSelf(middleware.UserID(c), req.Name, req.Phone)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return errorResponse(c, "Could not update profile", err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdatePasswordRequest represents the request body for a password change.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// HandleUpdatePassword verifies the old password and replaces the hash.
func (h *AccountHandler) HandleUpdatePassword(c *fiber.Ctx) error {
	var req UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing password request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.accountService.UpdatePassword(middleware.UserID(c), req.OldPassword, req.NewPassword)
	if err != nil {
		log.Printf("Error updating password: %v", err)
		return errorResponse(c, "Could not update password", err)
	}
	return c.JSON(fiber.Map{
		"message": "Password updated",
		"user":    user,
	})
}

// CreateAddressRequest represents the request body for address creation.
type CreateAddressRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Address1 string `json:"address1" validate:"required,max=255"`
	Address2 string `json:"address2" validate:"max=255"`
	Pincode  int    `json:"pincode" validate:"required,gte=100000,lte=999999"`
	City     string `json:"city" validate:"required,max=255"`
	State    string `json:"state" validate:"required,max=255"`
	Country  string `json:"country" validate:"required,max=255"`
}

// HandleCreateAddress creates an address owned by the caller.
func (h *AccountHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var req CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing address request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	address := models.Address{
		Name:     req.Name,
		Address1: req.Address1,
		Address2: req.Address2,
		Pincode:  req.Pincode,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
	}
	if err := h.accountService.CreateAddress(middleware.UserID(c), &address); err != nil {
		log.Printf("Error creating address: %v", err)
		return errorResponse(c, "Could not create address", err)
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleListAddresses returns the caller's addresses.
func (h *AccountHandler) HandleListAddresses(c *fiber.Ctx) error {
	addresses, err := h.accountService.Addresses(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing addresses: %v", err)
		return errorResponse(c, "Could not list addresses", err)
	}
	return c.JSON(addresses)
}

// HandleDeleteAddress deletes one of the caller's addresses.
func (h *AccountHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	addressID := c.Params("id")
	if err := h.accountService.DeleteAddress(middleware.UserID(c), addressID); err != nil {
		log.Printf("Error deleting address %s: %v", addressID, err)
		return errorResponse(c, "Could not delete address", err)
	}
	return c.JSON(fiber.Map{"id": addressID})
}

package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"butik/internal/services"
)

// UserIDKey is the fiber.Ctx Locals key under which the authenticated user's
// id is stored. Handlers read it and pass the identity into services
// explicitly; there is no ambient current-user state below the handler layer.
const UserIDKey = "user_id"

// UserID returns the authenticated caller's id, or "" when the request is
// anonymous.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header with a bearer token is required",
				"code":    "UNAUTHORIZED",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"code":    "UNAUTHORIZED",
			})
		}

		userID, _ := claims[UserIDKey].(string)
		c.Locals(UserIDKey, userID)

		return c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid bearer token is
// present but never rejects. Used on public catalog routes so reads can
// carry per-caller fields (is_liked) for signed-in users.
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := authService.ValidateToken(tokenString); err == nil {
				if userID, ok := claims[UserIDKey].(string); ok {
					c.Locals(UserIDKey, userID)
				}
			}
		}
		return c.Next()
	}
}

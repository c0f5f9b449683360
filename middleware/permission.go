package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that reloads the caller's account and
// checks its role. The token is never trusted for role claims: a missing
// account means a stale or tampered token and is rejected as unauthorized,
// not as a server error.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok || userID == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
		}

		var user models.User
		if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		if user.Role != requiredRole {
			return ErrorResponse(c, fiber.StatusForbidden, "You are not authorized to perform this action")
		}

		return c.Next()
	}
}

package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
)

// RequirePermission allows the request only when the caller's role carries a
// permission matching the resource/action pair. The check hits the database
// so revoking a permission takes effect on the next request.
func RequirePermission(resource string, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c, "Role.Permissions")
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		for _, permission := range user.Role.Permissions {
			if permission.Resource == resource && permission.Action == action {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}

// RequireRole allows the request only for callers holding the named role
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c, "Role")
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		if user.Role.Name != roleName {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		return c.Next()
	}
}

func currentUser(c *fiber.Ctx, preload string) (models.User, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.User{}, errors.New("no authenticated user in context")
	}

	var user models.User
	if err := db.DB.Preload(preload).First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

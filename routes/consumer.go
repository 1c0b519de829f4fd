package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers/consumer"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupConsumerRoutes configures all consumer related routes
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/consumer", middleware.Protected())
	consumerGroup.Get("/profile", consumer.GetUserProfile)
	consumerGroup.Post("/profile", consumer.CreateUserProfile)
	consumerGroup.Post("/profile/picture", consumer.UpdateUserProfilePicture)
	consumerGroup.Patch("/profile", consumer.UpdateUserProfile)
	consumerGroup.Delete("/profile", consumer.DeleteUserProfile)
}

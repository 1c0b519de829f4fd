package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews", middleware.Protected())
	review.Post("/", controllers.CreateReview)
	review.Patch("/:id", controllers.UpdateReview)
	review.Delete("/:id", controllers.DeleteReview)
}

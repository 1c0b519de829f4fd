package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupCartRoutes configures all cart related routes
func SetupCartRoutes(app *fiber.App) {
	cart := app.Group("/cart", middleware.Protected())
	cart.Get("/", controllers.GetCart)
	cart.Post("/items", controllers.AddCartItem)
	cart.Patch("/items/:id", controllers.UpdateCartItem)
	cart.Delete("/items/:id", controllers.RemoveCartItem)
}

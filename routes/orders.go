package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupOrderRoutes configures all order related routes
func SetupOrderRoutes(app *fiber.App) {
	order := app.Group("/orders", middleware.Protected())
	order.Post("/", controllers.CreateOrder)
	order.Get("/me", controllers.GetMyOrders)
	order.Post("/:id/cancel", controllers.CancelMyOrder)
	order.Post("/:id/pay", controllers.PayOrder)

	order.Get("/", middleware.RequirePermission("orders", "read"), controllers.GetAllOrders)
	order.Get("/:id", middleware.RequirePermission("orders", "read"), controllers.GetOrder)
	order.Patch("/:id/status", middleware.RequirePermission("orders", "update"), controllers.UpdateOrderStatus)
}

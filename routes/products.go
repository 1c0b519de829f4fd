package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupProductRoutes configures all catalog related routes
func SetupProductRoutes(app *fiber.App) {
	product := app.Group("/products")
	product.Get("/", controllers.GetAllProducts)
	product.Get("/:id", controllers.GetProduct)
	product.Get("/:id/reviews", controllers.GetProductReviews)
	product.Post("/", middleware.Protected(), middleware.RequirePermission("products", "create"), controllers.CreateProduct)
	product.Put("/:id", middleware.Protected(), middleware.RequirePermission("products", "update"), controllers.UpdateProduct)
	product.Post("/:id/image", middleware.Protected(), middleware.RequirePermission("products", "update"), controllers.UploadProductImage)
	product.Delete("/:id", middleware.Protected(), middleware.RequirePermission("products", "delete"), controllers.DeleteProduct)
}

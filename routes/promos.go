package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupPromoRoutes configures all promo code related routes
func SetupPromoRoutes(app *fiber.App) {
	promo := app.Group("/promos")
	promo.Post("/validate", controllers.ValidatePromoCode)

	promo.Get("/", middleware.Protected(), middleware.RequirePermission("promos", "create"), controllers.GetAllPromoCodes)
	promo.Post("/", middleware.Protected(), middleware.RequirePermission("promos", "create"), controllers.CreatePromoCode)
	promo.Patch("/:id", middleware.Protected(), middleware.RequirePermission("promos", "update"), controllers.UpdatePromoCode)
	promo.Delete("/:id", middleware.Protected(), middleware.RequirePermission("promos", "delete"), controllers.DeletePromoCode)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers/admin"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupDashboardRoutes configures the back-office dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.Protected(), middleware.RequirePermission("dashboard", "read"))
	dashboard.Get("/overview", admin.GetDashboardOverview)
	dashboard.Get("/recent-orders", admin.GetRecentOrders)
	dashboard.Get("/low-stock", admin.GetLowStockProducts)
	dashboard.Get("/sales-by-day", admin.GetSalesByDay)
}

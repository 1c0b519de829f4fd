package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
)

// SetupSlotRoutes configures the public slot availability routes
func SetupSlotRoutes(app *fiber.App) {
	slot := app.Group("/slots")
	slot.Get("/available-slots", controllers.GetAvailableSlots)
	slot.Get("/today-status", controllers.GetTodayStatus)
}

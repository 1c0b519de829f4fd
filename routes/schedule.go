package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/controllers"
	"github.com/maisondupain/boulangerie-api/middleware"
)

// SetupScheduleRoutes configures opening hours, closures and slot config routes
func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/schedule")
	schedule.Get("/opening-hours", controllers.GetOpeningHours)
	schedule.Get("/closures", controllers.GetClosures)
	schedule.Get("/settings", controllers.GetBakerySettings)

	admin := schedule.Group("/", middleware.Protected(), middleware.RequirePermission("schedule", "update"))
	admin.Put("/opening-hours", controllers.UpsertOpeningHours)
	admin.Post("/closures", controllers.CreateClosure)
	admin.Patch("/closures/:id", controllers.UpdateClosure)
	admin.Delete("/closures/:id", controllers.DeleteClosure)
	admin.Get("/slot-config", controllers.GetSlotConfig)
	admin.Patch("/slot-config", controllers.UpdateSlotConfig)
	admin.Get("/preparation-delays", controllers.GetPreparationDelays)
	admin.Put("/preparation-delays", controllers.UpsertPreparationDelay)
	admin.Put("/settings", controllers.UpdateBakerySettings)
}

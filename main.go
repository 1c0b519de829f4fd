package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/maisondupain/boulangerie-api/cron"

	"github.com/maisondupain/boulangerie-api/db"

	"github.com/maisondupain/boulangerie-api/redis"

	"github.com/maisondupain/boulangerie-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Maison du Pain API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupCartRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupPromoRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupSlotRoutes(app)
	routes.SetupDashboardRoutes(app)
	routes.SetupConsumerRoutes(app)

	log.Println("Maison du Pain API listening on :8000")
	log.Fatal(app.Listen(":8000"))
}

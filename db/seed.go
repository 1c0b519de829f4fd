package db

import (
	"log"
	"time"

	"github.com/maisondupain/boulangerie-api/models"
)

// Seed creates the default roles, permissions and scheduling configuration a
// fresh bakery needs before the back-office has been used once.
func Seed() {
	seedRolesAndPermissions()
	seedSchedule()
}

func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: "admin", Description: "Back-office administrator with full access"},
		{Name: "client", Description: "Customer who can order and review products"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_product", Description: "Create products", Resource: "products", Action: "create"},
		{Name: "update_product", Description: "Update products", Resource: "products", Action: "update"},
		{Name: "delete_product", Description: "Delete products", Resource: "products", Action: "delete"},
		{Name: "read_orders", Description: "View all orders", Resource: "orders", Action: "read"},
		{Name: "update_order", Description: "Change order status", Resource: "orders", Action: "update"},
		{Name: "create_promo", Description: "Create promo codes", Resource: "promos", Action: "create"},
		{Name: "update_promo", Description: "Update promo codes", Resource: "promos", Action: "update"},
		{Name: "delete_promo", Description: "Delete promo codes", Resource: "promos", Action: "delete"},
		{Name: "update_schedule", Description: "Edit opening hours, closures and slot config", Resource: "schedule", Action: "update"},
		{Name: "read_dashboard", Description: "View the dashboard", Resource: "dashboard", Action: "read"},
	}

	for _, permission := range permissions {
		var existingPermission models.Permission
		if DB.Where("name = ?", permission.Name).First(&existingPermission).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	// Admin gets everything
	var adminRole models.Role
	if DB.Where("name = ?", "admin").First(&adminRole).RowsAffected > 0 {
		var allPermissions []models.Permission
		DB.Find(&allPermissions)

		DB.Model(&adminRole).Association("Permissions").Clear()
		DB.Model(&adminRole).Association("Permissions").Append(allPermissions)
	}
}

func seedSchedule() {
	var cfg models.SlotConfig
	if DB.First(&cfg).RowsAffected == 0 {
		DB.Create(&models.SlotConfig{
			IntervalMinutes:    15,
			MinimumLeadMinutes: 30,
			SimultaneousSlots:  3,
		})
	}

	delays := map[string]int{
		models.CategoryPains:         30,
		models.CategoryViennoiseries: 20,
		models.CategoryPatisseries:   45,
		models.CategorySandwichs:     15,
		models.CategoryBoissons:      5,
		models.CategoryAutres:        15,
	}
	for category, minutes := range delays {
		var existing models.PreparationDelay
		if DB.Where("category = ?", category).First(&existing).RowsAffected == 0 {
			DB.Create(&models.PreparationDelay{Category: category, Minutes: minutes})
		}
	}

	// Closed on Sunday, open with a lunch break the rest of the week
	var count int64
	DB.Model(&models.OpeningHours{}).Count(&count)
	if count == 0 {
		for day := time.Monday; day <= time.Saturday; day++ {
			DB.Create(&models.OpeningHours{
				DayOfWeek:      day,
				Open:           true,
				MorningStart:   "07:00",
				MorningEnd:     "12:30",
				AfternoonStart: "15:00",
				AfternoonEnd:   "19:00",
			})
		}
		DB.Create(&models.OpeningHours{DayOfWeek: time.Sunday, Open: false})
	}

	log.Println("✅ Default schedule configuration seeded")
}

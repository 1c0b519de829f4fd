package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
)

// GetOpeningHours retrieves the weekly schedule

func GetOpeningHours(c *fiber.Ctx) error {
	var hours []models.OpeningHours
	if err := db.DB.Order("day_of_week").Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get opening hours",
		})
	}
	return c.JSON(hours)
}

// UpsertOpeningHours creates or replaces the row for one weekday
func UpsertOpeningHours(c *fiber.Ctx) error {
	hours := new(models.OpeningHours)
	if err := c.BodyParser(hours); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if hours.DayOfWeek < 0 || hours.DayOfWeek > 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	var existing models.OpeningHours
	if db.DB.Where("day_of_week = ?", hours.DayOfWeek).First(&existing).RowsAffected > 0 {
		hours.ID = existing.ID
		hours.CreatedAt = existing.CreatedAt
		if err := db.DB.Save(hours).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update opening hours",
			})
		}
		return c.JSON(hours)
	}

	if err := db.DB.Create(hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create opening hours",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(hours)
}

// GetClosures lists exceptional closures
func GetClosures(c *fiber.Ctx) error {
	var closures []models.ExceptionalClosure
	if err := db.DB.Order("start_date DESC").Find(&closures).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get closures",
		})
	}
	return c.JSON(closures)
}

// CreateClosure creates a new exceptional closure
func CreateClosure(c *fiber.Ctx) error {
	closure := new(models.ExceptionalClosure)
	if err := c.BodyParser(closure); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if closure.EndDate.Before(closure.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end_date must not be before start_date",
		})
	}
	if err := db.DB.Create(closure).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create closure",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(closure)
}

// UpdateClosure updates an existing closure
func UpdateClosure(c *fiber.Ctx) error {
	id := c.Params("id")
	var closure models.ExceptionalClosure
	if err := db.DB.First(&closure, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Closure not found",
		})
	}
	if err := c.BodyParser(&closure); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := db.DB.Save(&closure).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update closure",
		})
	}
	return c.JSON(closure)
}

// DeleteClosure deletes a closure by ID
func DeleteClosure(c *fiber.Ctx) error {
	id := c.Params("id")
	var closure models.ExceptionalClosure
	if err := db.DB.First(&closure, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Closure not found",
		})
	}
	if err := db.DB.Delete(&closure).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete closure",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSlotConfig returns the slot generation configuration
func GetSlotConfig(c *fiber.Ctx) error {
	var cfg models.SlotConfig
	if err := db.DB.First(&cfg).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Slot configuration not found",
		})
	}
	return c.JSON(cfg)
}

// UpdateSlotConfig updates the single slot configuration row
func UpdateSlotConfig(c *fiber.Ctx) error {
	var cfg models.SlotConfig
	if err := db.DB.First(&cfg).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Slot configuration not found",
		})
	}
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if cfg.IntervalMinutes <= 0 || cfg.SimultaneousSlots <= 0 || cfg.MinimumLeadMinutes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid slot configuration values",
		})
	}
	if err := db.DB.Save(&cfg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update slot configuration",
		})
	}
	return c.JSON(cfg)
}

// GetPreparationDelays lists per-category preparation delays
func GetPreparationDelays(c *fiber.Ctx) error {
	var delays []models.PreparationDelay
	if err := db.DB.Order("category").Find(&delays).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get preparation delays",
		})
	}
	return c.JSON(delays)
}

// UpsertPreparationDelay creates or updates the delay for one category
func UpsertPreparationDelay(c *fiber.Ctx) error {
	delay := new(models.PreparationDelay)
	if err := c.BodyParser(delay); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if delay.Category == "" || delay.Minutes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	var existing models.PreparationDelay
	if db.DB.Where("category = ?", delay.Category).First(&existing).RowsAffected > 0 {
		existing.Minutes = delay.Minutes
		if err := db.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update preparation delay",
			})
		}
		return c.JSON(existing)
	}

	if err := db.DB.Create(delay).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create preparation delay",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(delay)
}

// GetBakerySettings returns the shop identity shown on the storefront
func GetBakerySettings(c *fiber.Ctx) error {
	var settings models.BakerySettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bakery settings not found",
		})
	}
	return c.JSON(settings)
}

// UpdateBakerySettings creates or updates the single settings row
func UpdateBakerySettings(c *fiber.Ctx) error {
	settings := new(models.BakerySettings)
	if err := c.BodyParser(settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.BakerySettings
	if db.DB.First(&existing).RowsAffected > 0 {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	}
	if err := db.DB.Save(settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update bakery settings",
		})
	}
	return c.JSON(settings)
}

package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/slots"
	"github.com/maisondupain/boulangerie-api/utils"
)

func slotEngine() *slots.Engine {
	return slots.NewEngine(slots.NewGormStore(db.DB))
}

// GetAvailableSlots godoc
// @Summary List bookable pickup slots for a date
// @Description Computes pickup slots from the weekly schedule, closures, preparation delays and booked orders
// @Tags slots
// @Produce json
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Param category query string false "Product category for the preparation delay"
// @Success 200 {object} slots.Availability
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /slots/available-slots [get]
func GetAvailableSlots(c *fiber.Ctx) error {
	dateParam := c.Query("date")
	if dateParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date required",
		})
	}

	targetDate, err := time.ParseInLocation("2006-01-02", dateParam, utils.ParisLocation())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	result, err := slotEngine().ComputeAvailableSlots(targetDate, c.Query("category"), utils.NowParis())
	if err != nil {
		if errors.Is(err, slots.ErrMissingConfig) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Schedule configuration not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute available slots",
			Error:   err.Error(),
		})
	}

	return c.JSON(result)
}

// GetTodayStatus reports whether the shop is open right now
func GetTodayStatus(c *fiber.Ctx) error {
	status, err := slotEngine().ComputeTodayStatus(utils.NowParis())
	if err != nil {
		if errors.Is(err, slots.ErrMissingConfig) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Schedule configuration not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute today's status",
			Error:   err.Error(),
		})
	}
	return c.JSON(status)
}

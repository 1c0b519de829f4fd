package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
	"github.com/maisondupain/boulangerie-api/utils"
)

// GetAllPromoCodes lists promo codes for the back-office
func GetAllPromoCodes(c *fiber.Ctx) error {
	var promos []models.PromoCode
	if err := db.DB.Order("created_at DESC").Find(&promos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch promo codes",
			Error:   err.Error(),
		})
	}
	return c.JSON(promos)
}

// CreatePromoCode creates a new promo code
func CreatePromoCode(c *fiber.Ctx) error {
	promo := new(models.PromoCode)
	if err := c.BodyParser(promo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if promo.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if err := db.DB.Create(promo).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to create promo code",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(promo)
}

// UpdatePromoCode updates an existing promo code
func UpdatePromoCode(c *fiber.Ctx) error {
	id := c.Params("id")
	var promo models.PromoCode
	if err := db.DB.First(&promo, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Promo code not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&promo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&promo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update promo code",
			Error:   err.Error(),
		})
	}
	return c.JSON(promo)
}

// DeletePromoCode removes a promo code
func DeletePromoCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.PromoCode{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete promo code",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ValidatePromoCode checks a code against the clock and usage limits and
// returns the discount it would take off the given subtotal.
func ValidatePromoCode(c *fiber.Ctx) error {
	type ValidateInput struct {
		Code     string `json:"code"`
		SubTotal int64  `json:"sub_total"` // cents
	}
	input := new(ValidateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var promo models.PromoCode
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := db.DB.Where("code = ?", code).First(&promo).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Promo code not found",
		})
	}

	if err := promo.Validate(utils.NowParis()); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"code":     promo.Code,
		"percent":  promo.Percent,
		"discount": promo.DiscountFor(input.SubTotal),
		"total":    input.SubTotal - promo.DiscountFor(input.SubTotal),
	})
}

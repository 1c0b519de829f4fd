package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
	"gorm.io/gorm"
)

// CreateReview adds a new review for a product
func CreateReview(c *fiber.Ctx) error {
	userIDVal := c.Locals("userID")
	userID, ok := userIDVal.(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	// Set the customer ID to the authenticated user
	review.CustomerID = userID

	// Check if the product exists
	var product models.Product
	if err := db.DB.First(&product, review.ProductID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	// Check if the user has already reviewed this product
	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this product. Please update your existing review.",
		})
	}

	// If an order is referenced, verify it belongs to the customer, is
	// completed and actually contains the product
	if review.OrderID != nil && *review.OrderID > 0 {
		var order models.Order
		if err := db.DB.Where("id = ? AND customer_id = ? AND status = ?",
			*review.OrderID, userID, models.StatusCompleted).
			First(&order).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found or not completed",
			})
		}
		var itemCount int64
		db.DB.Model(&models.OrderItem{}).
			Where("order_id = ? AND product_id = ?", order.ID, review.ProductID).
			Count(&itemCount)
		if itemCount == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order does not contain this product",
			})
		}

		// Mark as verified since it's linked to a real purchase
		review.IsVerified = true
	}

	if err := db.DB.Create(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetProductReviews retrieves all reviews for a specific product
func GetProductReviews(c *fiber.Ctx) error {
	productID := c.Params("id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		// Only select non-sensitive fields
		return db.Select("id, name, created_at")
	}).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	// Hide customer identity on anonymous reviews
	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].Customer = models.User{Name: "Client anonyme"}
			reviews[i].CustomerID = 0
		}
	}

	var count int64
	db.DB.Model(&models.Review{}).Where("product_id = ?", productID).Count(&count)

	type AverageResult struct {
		Average float64
	}
	var avg AverageResult
	db.DB.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) as average").
		Scan(&avg)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   count,
		"average": avg.Average,
		"page":    page,
		"limit":   limit,
	})
}

// UpdateReview lets a customer edit their own review
func UpdateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	id := c.Params("id")
	var review models.Review
	if err := db.DB.Where("id = ? AND customer_id = ?", id, userID).First(&review).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	type UpdateInput struct {
		Rating      *float64 `json:"rating"`
		Comment     *string  `json:"comment"`
		IsAnonymous *bool    `json:"is_anonymous"`
	}
	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
		if review.Rating < 1.0 {
			review.Rating = 1.0
		} else if review.Rating > 5.0 {
			review.Rating = 5.0
		}
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	if input.IsAnonymous != nil {
		review.IsAnonymous = *input.IsAnonymous
	}

	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update review",
		})
	}
	return c.JSON(review)
}

// DeleteReview removes a customer's own review
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	id := c.Params("id")
	var review models.Review
	if err := db.DB.Where("id = ? AND customer_id = ?", id, userID).First(&review).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	if err := db.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete review",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

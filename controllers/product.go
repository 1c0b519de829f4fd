package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
	"github.com/maisondupain/boulangerie-api/redis"
	"github.com/maisondupain/boulangerie-api/utils"
)

const catalogCacheTTL = 60 * time.Second

// GetAllProducts returns the active catalog, optionally filtered by category.
// The unfiltered list is cached in Redis since it is the hottest endpoint.
func GetAllProducts(c *fiber.Ctx) error {
	category := c.Query("category")

	cacheKey := "catalog:all"
	if category == "" && redis.Client != nil {
		cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result()
		if err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cached), &products) == nil {
				return c.JSON(products)
			}
		}
	}

	query := db.DB.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("category, name").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}

	if category == "" && redis.Client != nil {
		if payload, err := json.Marshal(products); err == nil {
			redis.Client.Set(redis.Ctx, cacheKey, payload, catalogCacheTTL)
		}
	}

	return c.JSON(products)
}

// GetProduct returns a product by ID
func GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// CreateProduct creates a new catalog entry
func CreateProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if product.Name == "" || product.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if product.Category == "" {
		product.Category = models.CategoryAutres
	}
	if err := db.DB.Create(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create product",
			Error:   err.Error(),
		})
	}
	invalidateCatalogCache()
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct updates an existing product
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update product",
			Error:   err.Error(),
		})
	}
	invalidateCatalogCache()
	return c.JSON(product)
}

// DeleteProduct removes a product from the catalog
func DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.Product{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete product",
			Error:   err.Error(),
		})
	}
	invalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadProductImage stores a product photo on Cloudinary
func UploadProductImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("product_%d", product.ID)
	secureURL, err := utils.UploadProductImage(f, publicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	product.ImageURL = secureURL
	if err := db.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save product image",
			Error:   err.Error(),
		})
	}
	invalidateCatalogCache()

	return c.JSON(product)
}

func invalidateCatalogCache() {
	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, "catalog:all")
	}
}

package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
	"github.com/maisondupain/boulangerie-api/utils"
)

// openCartFor returns the customer's open cart, creating one if needed.
func openCartFor(customerID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.DB.Preload("Items.Product").
		Where("customer_id = ? AND is_open = ?", customerID, true).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}

	cart = models.Cart{CustomerID: customerID, IsOpen: true}
	if err := db.DB.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns the authenticated customer's open cart with totals
func GetCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	cart, err := openCartFor(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch cart",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"cart":      cart,
		"sub_total": cart.SubTotal(),
	})
}

// AddCartItem adds a product to the cart or bumps its quantity
func AddCartItem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type AddItemInput struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	input := new(AddItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var product models.Product
	if err := db.DB.Where("id = ? AND is_active = ?", input.ProductID, true).First(&product).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	if product.Stock < input.Quantity {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Not enough stock for this product",
		})
	}

	cart, err := openCartFor(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch cart",
			Error:   err.Error(),
		})
	}

	var item models.CartItem
	if db.DB.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).RowsAffected > 0 {
		item.Quantity += input.Quantity
		if err := db.DB.Save(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update cart item",
				Error:   err.Error(),
			})
		}
	} else {
		item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: input.Quantity}
		if err := db.DB.Create(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to add cart item",
				Error:   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateCartItem changes the quantity of an item, removing it at zero
func UpdateCartItem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	type UpdateItemInput struct {
		Quantity int `json:"quantity"`
	}
	input := new(UpdateItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var item models.CartItem
	if err := db.DB.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.customer_id = ? AND carts.is_open = ?", id, userID, true).
		First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cart item not found",
		})
	}

	if input.Quantity <= 0 {
		if err := db.DB.Delete(&item).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to remove cart item",
				Error:   err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	item.Quantity = input.Quantity
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update cart item",
			Error:   err.Error(),
		})
	}
	return c.JSON(item)
}

// RemoveCartItem deletes an item from the open cart
func RemoveCartItem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var item models.CartItem
	if err := db.DB.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.customer_id = ? AND carts.is_open = ?", id, userID, true).
		First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cart item not found",
		})
	}
	if err := db.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to remove cart item",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

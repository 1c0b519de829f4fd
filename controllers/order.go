package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
	"github.com/maisondupain/boulangerie-api/slots"
	"github.com/maisondupain/boulangerie-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrder turns the customer's open cart into an order on a pickup slot
func CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type CreateOrderInput struct {
		PickupTime time.Time `json:"pickup_time"`
		PromoCode  string    `json:"promo_code"`
		Note       string    `json:"note"`
	}
	input := new(CreateOrderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.PickupTime.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "pickup_time required",
		})
	}
	pickupTime := input.PickupTime.In(utils.ParisLocation()).Truncate(time.Minute)

	var cart models.Cart
	if err := db.DB.Preload("Items.Product").
		Where("customer_id = ? AND is_open = ?", userID, true).
		First(&cart).Error; err != nil || len(cart.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cart is empty",
		})
	}

	// The offered slot list is advisory; the slot is validated again here
	// against schedule and capacity before the order is written.
	engine := slots.NewEngine(slots.NewGormStore(db.DB))
	availability, err := engine.ComputeAvailableSlots(pickupTime, dominantCategory(cart.Items), utils.NowParis())
	if err != nil {
		if errors.Is(err, slots.ErrMissingConfig) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Schedule configuration not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check slot availability",
			Error:   err.Error(),
		})
	}
	slotOffered := false
	for _, slot := range availability.Slots {
		if slot.DateTime.Equal(pickupTime) {
			slotOffered = true
			break
		}
	}
	if !slotOffered {
		message := availability.Message
		if message == "" {
			message = "Ce créneau n'est pas disponible"
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": message,
		})
	}

	subTotal := cart.SubTotal()
	var discount int64
	promoCode := strings.ToUpper(strings.TrimSpace(input.PromoCode))
	var promo *models.PromoCode
	if promoCode != "" {
		promo = new(models.PromoCode)
		if err := db.DB.Where("code = ?", promoCode).First(promo).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Promo code not found",
			})
		}
		if err := promo.Validate(utils.NowParis()); err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		discount = promo.DiscountFor(subTotal)
	}

	order := models.Order{
		Reference:  utils.GenerateOrderReference(),
		CustomerID: userID,
		PickupTime: pickupTime,
		SubTotal:   subTotal,
		Discount:   discount,
		Total:      subTotal - discount,
		PromoCode:  promoCode,
		Note:       input.Note,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Re-count inside the transaction to narrow the booking race. Matching
		// rows are locked so two checkouts cannot both pass on the same count.
		var cfg models.SlotConfig
		if err := tx.First(&cfg).Error; err != nil {
			return err
		}
		// FOR UPDATE does not combine with COUNT, so the rows are fetched
		var sameSlot []models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pickup_time = ? AND status <> ?", pickupTime, models.StatusCanceled).
			Find(&sameSlot).Error; err != nil {
			return err
		}
		if len(sameSlot) >= cfg.SimultaneousSlots {
			return fmt.Errorf("ce créneau vient d'être complet")
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, cartItem := range cart.Items {
			if cartItem.Product.Stock < cartItem.Quantity {
				return fmt.Errorf("not enough stock for %s", cartItem.Product.Name)
			}
			unitPrice := cartItem.Product.DiscountedPrice
			if unitPrice == 0 {
				unitPrice = cartItem.Product.Price
			}
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
				UnitPrice: unitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).Where("id = ?", cartItem.ProductID).
				Update("stock", gorm.Expr("stock - ?", cartItem.Quantity)).Error; err != nil {
				return err
			}
		}

		if promo != nil {
			if err := tx.Model(promo).Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}

		// Close the cart so the next visit starts fresh
		return tx.Model(&cart).Update("is_open", false).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to create order",
			Error:   err.Error(),
		})
	}

	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err == nil {
		emailBody := fmt.Sprintf(`
			<p>Bonjour %s,</p>
			<p>Votre commande <strong>%s</strong> a bien été enregistrée.</p>
			<ul>
				<li><strong>Retrait :</strong> %s</li>
				<li><strong>Total :</strong> %.2f €</li>
			</ul>
			<p>À très bientôt,</p>
			<p>Maison du Pain</p>
		`, customer.Name, order.Reference,
			order.PickupTime.Format("02/01/2006 15:04"),
			float64(order.Total)/100)
		if err := utils.SendEmail(customer.Email, "Confirmation de commande", emailBody); err != nil {
			fmt.Println("Failed to send order confirmation email:", err)
		}
	}

	db.DB.Preload("Items.Product").First(&order, order.ID)
	return c.Status(fiber.StatusCreated).JSON(order)
}

// dominantCategory picks the slowest preparation category present in the cart
// so the slot check uses the delay the kitchen actually needs.
func dominantCategory(items []models.CartItem) string {
	var category string
	var worst int
	var delays []models.PreparationDelay
	if err := db.DB.Find(&delays).Error; err != nil {
		return ""
	}
	minutes := make(map[string]int, len(delays))
	for _, delay := range delays {
		minutes[delay.Category] = delay.Minutes
	}
	for _, item := range items {
		if m := minutes[item.Product.Category]; m >= worst {
			worst = m
			category = item.Product.Category
		}
	}
	return category
}

// GetMyOrders lists the authenticated customer's orders, newest first
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var orders []models.Order
	if err := db.DB.Preload("Items.Product").
		Where("customer_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetAllOrders lists every order for the back-office
func GetAllOrders(c *fiber.Ctx) error {
	query := db.DB.Preload("Items.Product").Preload("Customer")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(pickup_time) = ?", date)
	}

	var orders []models.Order
	if err := query.Order("pickup_time").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetOrder returns an order by ID
func GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	var order models.Order
	if err := db.DB.Preload("Items.Product").Preload("Customer").First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(order)
}

// UpdateOrderStatus applies a status transition from the back-office
func UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	type StatusInput struct {
		Status models.OrderStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}

	if err := order.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.Status == models.StatusReady {
		var customer models.User
		if err := db.DB.First(&customer, order.CustomerID).Error; err == nil {
			body := fmt.Sprintf("<p>Bonjour %s,</p><p>Votre commande %s est prête, à tout de suite !</p>",
				customer.Name, order.Reference)
			if err := utils.SendEmail(customer.Email, "Commande prête", body); err != nil {
				fmt.Println("Failed to send ready email:", err)
			}
		}
	}

	return c.JSON(order)
}

// CancelMyOrder lets a customer cancel an order that is not completed
func CancelMyOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var order models.Order
	if err := db.DB.Where("id = ? AND customer_id = ?", id, userID).First(&order).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	if err := order.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Put the stock back
	var items []models.OrderItem
	if err := db.DB.Where("order_id = ?", order.ID).Find(&items).Error; err == nil {
		for _, item := range items {
			db.DB.Model(&models.Product{}).Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity))
		}
	}

	return c.JSON(order)
}

// PayOrder records a payment for an order. There is no real payment provider,
// the order is flipped to paid with a generated reference.
func PayOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var order models.Order
	if err := db.DB.Where("id = ? AND customer_id = ?", id, userID).First(&order).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}
	if order.PaymentStatus == models.PaymentPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Order is already paid",
		})
	}
	if order.Status == models.StatusCanceled {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot pay a canceled order",
		})
	}

	order.PaymentStatus = models.PaymentPaid
	order.PaymentRef = utils.GeneratePaymentReference()
	if err := db.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record payment",
			Error:   err.Error(),
		})
	}
	return c.JSON(order)
}

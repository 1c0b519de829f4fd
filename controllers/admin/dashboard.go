package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
)

func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalOrders    int64     `json:"total_orders"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		ReadyCount     int64     `json:"ready_count"`
		CompletedCount int64     `json:"completed_count"`
		CanceledCount  int64     `json:"canceled_count"`
		TotalProducts  int64     `json:"total_products"`
		TotalRevenue   int64     `json:"total_revenue"` // cents, completed orders
		LowStockCount  int64     `json:"low_stock_count"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	orderQuery := db.DB.Model(&models.Order{})
	orderQuery.Count(&statistics.TotalOrders)

	orderQuery.Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	orderQuery.Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	orderQuery.Where("status = ?", models.StatusReady).Count(&statistics.ReadyCount)
	orderQuery.Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	orderQuery.Where("status = ?", models.StatusCanceled).Count(&statistics.CanceledCount)

	db.DB.Model(&models.Product{}).Where("is_active = ?", true).Count(&statistics.TotalProducts)
	db.DB.Model(&models.Product{}).
		Where("is_active = ? AND stock <= low_stock_level", true).
		Count(&statistics.LowStockCount)

	type RevenueResult struct {
		TotalRevenue int64
	}
	var revenueResult RevenueResult
	db.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total), 0) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentOrders returns the most recent orders
func GetRecentOrders(c *fiber.Ctx) error {
	limit := 5 // Default limit
	if c.Query("limit") != "" {
		parsedLimit := c.QueryInt("limit")
		if parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var orders []models.Order
	if err := db.DB.Preload("Items.Product").Preload("Customer").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recent orders",
		})
	}
	return c.JSON(orders)
}

// GetLowStockProducts lists products at or below their restock level
func GetLowStockProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := db.DB.
		Where("is_active = ? AND stock <= low_stock_level", true).
		Order("stock").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch low stock products",
		})
	}
	return c.JSON(products)
}

// GetSalesByDay aggregates completed order revenue per pickup day
func GetSalesByDay(c *fiber.Ctx) error {
	days := 7
	if c.Query("days") != "" {
		parsed := c.QueryInt("days")
		if parsed > 0 && parsed <= 90 {
			days = parsed
		}
	}

	type DailySales struct {
		Day     time.Time `json:"day"`
		Orders  int64     `json:"orders"`
		Revenue int64     `json:"revenue"` // cents
	}
	var sales []DailySales

	since := time.Now().AddDate(0, 0, -days)
	if err := db.DB.Model(&models.Order{}).
		Where("status = ? AND pickup_time >= ?", models.StatusCompleted, since).
		Select("DATE(pickup_time) as day, COUNT(*) as orders, COALESCE(SUM(total), 0) as revenue").
		Group("DATE(pickup_time)").
		Order("day").
		Scan(&sales).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to aggregate sales",
		})
	}

	return c.JSON(sales)
}

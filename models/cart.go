package models

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cart_id" gorm:"index"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	gorm.Model
	CustomerID uint       `json:"customer_id" gorm:"index"`
	Customer   User       `json:"customer" gorm:"foreignKey:CustomerID"`
	Items      []CartItem `json:"items" gorm:"foreignKey:CartID"`
	IsOpen     bool       `json:"is_open" gorm:"default:true"`
}

// SubTotal sums item prices in cents using the current product discount.
func (c *Cart) SubTotal() int64 {
	var total int64
	for _, item := range c.Items {
		price := item.Product.DiscountedPrice
		if price == 0 {
			price = item.Product.Price
		}
		total += price * int64(item.Quantity)
	}
	return total
}

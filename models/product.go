package models

import (
	"gorm.io/gorm"
)

// Category keys used across products and preparation delays.
const (
	CategoryPains         = "pains"
	CategoryViennoiseries = "viennoiseries"
	CategoryPatisseries   = "patisseries"
	CategorySandwichs     = "sandwichs"
	CategoryBoissons      = "boissons"
	CategoryAutres        = "autres"
)

type Product struct {
	gorm.Model
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category" gorm:"index;default:'autres'"`
	Price           int64   `json:"price"` // price in cents
	Discount        float64 `json:"discount"` // Discount percentage
	DiscountedPrice int64   `json:"discounted_price" gorm:"-"`
	ImageURL        string  `json:"image_url"`
	Stock           int     `json:"stock" gorm:"default:0"`
	LowStockLevel   int     `json:"low_stock_level" gorm:"default:5"`
	IsActive        bool    `json:"is_active" gorm:"default:true"`
}

func (p *Product) AfterFind(tx *gorm.DB) (err error) {
	p.DiscountedPrice = p.Price - int64(float64(p.Price)*p.Discount/100)
	return
}

// IsLowStock reports whether the product is at or below its restock level.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockLevel
}

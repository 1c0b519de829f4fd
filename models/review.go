package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating      float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment     string  `json:"comment"`
	ProductID   uint    `json:"product_id"`
	Product     Product `json:"product" gorm:"foreignKey:ProductID"`
	CustomerID  uint    `json:"customer_id"`
	Customer    User    `json:"customer" gorm:"foreignKey:CustomerID"`
	IsAnonymous bool    `json:"is_anonymous" gorm:"default:false"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false"` // Indicates if this review comes from a completed order
	OrderID     *uint   `json:"order_id"`                         // Optional link to order
}

// BeforeCreate hook to validate rating
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	// Ensure rating is between 1.0 and 5.0
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}

	return nil
}

// Check if customer has already reviewed this product
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND product_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.ProductID).
		Count(&count).Error

	return count > 0, err
}

package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PromoCode struct {
	gorm.Model
	Code       string    `json:"code" gorm:"uniqueIndex"`
	Percent    float64   `json:"percent"` // discount percentage, 0-100
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	UsageLimit int       `json:"usage_limit"` // 0 means unlimited
	UsedCount  int       `json:"used_count"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
}

func (p *PromoCode) BeforeCreate(tx *gorm.DB) error {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if p.Percent < 0 {
		p.Percent = 0
	} else if p.Percent > 100 {
		p.Percent = 100
	}
	return nil
}

// Validate checks whether the code can be applied at the given time.
func (p *PromoCode) Validate(now time.Time) error {
	if !p.IsActive {
		return fmt.Errorf("promo code is not active")
	}
	if now.Before(p.StartsAt) {
		return fmt.Errorf("promo code is not valid yet")
	}
	if !p.EndsAt.IsZero() && now.After(p.EndsAt) {
		return fmt.Errorf("promo code has expired")
	}
	if p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit {
		return fmt.Errorf("promo code usage limit reached")
	}
	return nil
}

// DiscountFor returns the discount in cents for a cart subtotal.
func (p *PromoCode) DiscountFor(subTotal int64) int64 {
	return int64(float64(subTotal) * p.Percent / 100)
}

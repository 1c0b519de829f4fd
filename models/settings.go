package models

import (
	"gorm.io/gorm"
)

// BakerySettings is the single-row shop identity used by the storefront.
type BakerySettings struct {
	gorm.Model
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Announcement string `json:"announcement"` // Optional storefront banner
}

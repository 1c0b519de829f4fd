package models

import (
	"gorm.io/gorm"
)

type UserDetails struct {
	gorm.Model
	User             User      `json:"user" gorm:"foreignKey:UserID"`
	UserID           uint      `json:"user_id"`
	ProfilePicture   string    `json:"profile_picture"`
	FavoriteProducts []Product `json:"favorite_products" gorm:"many2many:user_favorite_products;"`
}

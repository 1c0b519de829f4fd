package models

import (
	"time"
)

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Email      string    `json:"email" gorm:"unique"`
	Password   string    `json:"password,omitempty"`
	Phone      string    `json:"phone"`
	IsVerified bool      `json:"is_verified"`
	RoleID     uint      `json:"role_id"`
	Role       Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Orders     []Order   `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
	Reviews    []Review  `json:"reviews,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package db

import (
	"fmt"
	"log"

	"github.com/maisondupain/boulangerie-api/models"
)

func Migrate() {
	if DB == nil {
		Init()
	}

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserDetails{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PromoCode{},
		&models.Review{},
		&models.OpeningHours{},
		&models.ExceptionalClosure{},
		&models.SlotConfig{},
		&models.PreparationDelay{},
		&models.BakerySettings{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}

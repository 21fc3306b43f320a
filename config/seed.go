package config

import (
	"log"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// SeedMenu fills an empty database with a starter menu so a fresh deployment
// has something to show.
func SeedMenu(db *gorm.DB) error {
	var dishCount, catCount int64
	if err := db.Model(&models.Dish{}).Count(&dishCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Category{}).Count(&catCount).Error; err != nil {
		return err
	}
	if dishCount > 0 || catCount > 0 {
		return nil
	}

	categories := []models.Category{
		{Value: "pizza", Name: "Pizza"},
		{Value: "pasta", Name: "Pasta"},
		{Value: "drinks", Name: "Drinks"},
	}
	dishes := []models.Dish{
		{Category: "pizza", Name: "Margherita", Description: "Tomato sauce, mozzarella, fresh basil, olive oil.", Price: 550, Image: "src/images/margherita.jpg"},
		{Category: "pizza", Name: "Pepperoni", Description: "Tomato sauce, mozzarella, spicy pepperoni.", Price: 550, Image: "src/images/pepperoni.jpg"},
		{Category: "pizza", Name: "Four Cheese", Description: "Cream sauce, mozzarella, blue cheese, parmesan, cheddar.", Price: 550, Image: "src/images/four-cheese.jpg"},
		{Category: "pasta", Name: "Carbonara", Description: "Spaghetti, guanciale, egg yolk, pecorino romano, black pepper.", Price: 550, Image: "src/images/carbonara.jpg"},
		{Category: "pasta", Name: "Bolognese", Description: "Tagliatelle, beef and pork ragu, parmesan.", Price: 550, Image: "src/images/bolognese.jpg"},
		{Category: "drinks", Name: "Lemonade", Description: "Homemade, 0.5l", Price: 550, Image: "src/images/lemonade.jpg"},
		{Category: "drinks", Name: "Berry Punch", Description: "Cranberry, 0.5l", Price: 550, Image: "src/images/punch.jpg"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}
		if err := tx.Create(&dishes).Error; err != nil {
			return err
		}
		log.Printf("Seeded menu: %d categories, %d dishes", len(categories), len(dishes))
		return nil
	})
}

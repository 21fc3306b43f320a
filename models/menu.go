package models

import "time"

// Category is a menu section. Value is the stable slug dishes reference;
// Name is the display label shown to customers.
type Category struct {
	Value     string    `json:"value" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Dishes    []Dish    `json:"dishes,omitempty" gorm:"foreignKey:Category;references:Value"`
	CreatedAt time.Time `json:"created_at"`
}

type Dish struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Category    string    `json:"category" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       int64     `json:"price" gorm:"not null"` // smallest currency unit
	Image       string    `json:"image" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import "time"

// OrderStatus represents the lifecycle state of a customer order
type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusInProgress OrderStatus = "in_progress"
	StatusClosed     OrderStatus = "closed"
)

// LineItem is one cart entry. Price is a snapshot taken at order time so the
// order total stays accurate when menu prices change later.
type LineItem struct {
	DishID   uint   `json:"dish_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerName  string      `json:"customer_name" gorm:"not null"`
	Phone         string      `json:"phone" gorm:"not null"`
	TableLocation string      `json:"table_location"`
	LineItems     []LineItem  `json:"line_items" gorm:"serializer:json;not null"`
	Total         int64       `json:"total" gorm:"not null"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'new'"`
	CreatedAt     time.Time   `json:"created_at"`
}

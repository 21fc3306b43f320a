package store

import (
	"errors"
	"fmt"

	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"gorm.io/gorm"
)

// CreateOrder validates and persists a customer submission with status "new"
// and returns the new order's id. The total is computed from the submitted
// per-line prices; it is a snapshot and is never recomputed from the live
// menu afterwards.
func (s *Store) CreateOrder(customerName, phone, tableLocation string, items []models.LineItem) (uint, error) {
	if customerName == "" || phone == "" {
		return 0, fmt.Errorf("%w: customer name and phone are required", ErrInvalidInput)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}

	var total int64
	for i, item := range items {
		if item.Quantity < 1 {
			return 0, fmt.Errorf("%w: item %d has no quantity", ErrInvalidInput, i)
		}
		if item.Price < 0 {
			return 0, fmt.Errorf("%w: item %d has a negative price", ErrInvalidInput, i)
		}
		total += item.Price * int64(item.Quantity)
	}

	order := models.Order{
		CustomerName:  customerName,
		Phone:         phone,
		TableLocation: tableLocation,
		LineItems:     items,
		Total:         total,
		Status:        models.StatusNew,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// GetOrder fetches a single order by id.
func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns all orders, newest first.
func (s *Store) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// TakeOrder moves an order from "new" to "in_progress". The status filter on
// the UPDATE is the compare-and-set that makes first-writer-wins hold under
// concurrent calls: exactly one take ever succeeds per order.
func (s *Store) TakeOrder(id uint) error {
	return s.transition(id, models.StatusNew, models.StatusInProgress)
}

// CloseOrder moves an order to "closed" from either "new" or "in_progress".
// The guard excludes only already-closed orders.
func (s *Store) CloseOrder(id uint) error {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status <> ?", id, models.StatusClosed).
		Update("status", models.StatusClosed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	if _, err := s.GetOrder(id); err != nil {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidTransition,
		statemachine.CanTransition(models.StatusClosed, models.StatusClosed))
}

// transition performs a guarded status update: the row is touched only when
// its current status matches from. A zero-row result is disambiguated into
// NotFound vs InvalidTransition by re-reading the order.
func (s *Store) transition(id uint, from, to models.OrderStatus) error {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}
	smErr := statemachine.CanTransition(order.Status, to)
	if smErr == nil {
		// The state machine allows it but the guard missed: the status moved
		// under us between the UPDATE and the re-read. Report the conflict.
		smErr = fmt.Errorf("order %d changed concurrently", id)
	}
	return fmt.Errorf("%w: %v", ErrInvalidTransition, smErr)
}

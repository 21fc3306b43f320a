package store

import (
	"errors"
	"fmt"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// DefaultDishImage is used when a dish is added without a picture
const DefaultDishImage = "src/images/default.jpg"

// AddCategory creates a new menu section. The value slug must be unique.
func (s *Store) AddCategory(value, name string) error {
	if value == "" || name == "" {
		return fmt.Errorf("%w: category value and name are required", ErrInvalidInput)
	}

	var existing models.Category
	if err := s.db.First(&existing, "value = ?", value).Error; err == nil {
		return fmt.Errorf("%w: category %q already exists", ErrDuplicate, value)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.Create(&models.Category{Value: value, Name: name}).Error
}

// RemoveCategory deletes a category together with every dish referencing it.
// Both deletions run in one transaction; a partially applied cascade is never
// observable.
func (s *Store) RemoveCategory(value string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "value = ?", value).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: category %q", ErrNotFound, value)
			}
			return err
		}
		if err := tx.Where("category = ?", value).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// AddDish creates a dish under an existing category and returns its id.
func (s *Store) AddDish(category, name, description string, price int64, image string) (uint, error) {
	if category == "" || name == "" || description == "" {
		return 0, fmt.Errorf("%w: category, name and description are required", ErrInvalidInput)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if image == "" {
		image = DefaultDishImage
	}

	var cat models.Category
	if err := s.db.First(&cat, "value = ?", category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: category %q", ErrNotFound, category)
		}
		return 0, err
	}

	dish := models.Dish{
		Category:    category,
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
	}
	if err := s.db.Create(&dish).Error; err != nil {
		return 0, err
	}
	return dish.ID, nil
}

// RemoveDish deletes a dish by id.
func (s *Store) RemoveDish(id uint) error {
	res := s.db.Delete(&models.Dish{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: dish %d", ErrNotFound, id)
	}
	return nil
}

// ListMenu returns all categories with their dishes, both in insertion order.
func (s *Store) ListMenu() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.
		Preload("Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("rowid").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

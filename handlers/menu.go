package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMenu returns all categories with their dishes (public)
func (h *Handler) GetMenu(c *gin.Context) {
	categories, err := h.Store.ListMenu()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type AddCategoryRequest struct {
	Value string `json:"value" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// AddCategory creates a new menu section (staff only)
func (h *Handler) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.AddCategory(req.Value, req.Name); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "value": req.Value})
}

// RemoveCategory deletes a category and all its dishes (staff only)
func (h *Handler) RemoveCategory(c *gin.Context) {
	if err := h.Store.RemoveCategory(c.Param("value")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
}

type AddDishRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required"`
	Image       string `json:"image"`
}

// AddDish creates a dish under an existing category (staff only)
func (h *Handler) AddDish(c *gin.Context) {
	var req AddDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Store.AddDish(req.Category, req.Name, req.Description, *req.Price, req.Image)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish added", "dish_id": id})
}

type RemoveDishRequest struct {
	DishID uint `json:"dish_id" binding:"required"`
}

// RemoveDish deletes a dish by id (staff only)
func (h *Handler) RemoveDish(c *gin.Context) {
	var req RemoveDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.RemoveDish(req.DishID); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish removed"})
}

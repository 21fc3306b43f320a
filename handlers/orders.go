package handlers

import (
	"net/http"
	"strconv"

	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type OrderItemRequest struct {
	DishID   uint   `json:"dish_id"`
	Name     string `json:"name"`
	Price    *int64 `json:"price" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Phone        string             `json:"phone" binding:"required"`
	TableToken   string             `json:"table_token"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder accepts a customer cart submission (public). When the request
// carries a table token it must verify, and its location is recorded on the
// order.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var location string
	if req.TableToken != "" {
		loc, err := h.Issuer.VerifyTable(req.TableToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid table token"})
			return
		}
		location = loc
	}

	items := make([]models.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.LineItem{
			DishID:   it.DishID,
			Name:     it.Name,
			Price:    *it.Price,
			Quantity: it.Quantity,
		})
	}

	id, err := h.Store.CreateOrder(req.CustomerName, req.Phone, location, items)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order_id": id})
}

// ListOrders returns all orders, newest first (staff only)
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Store.ListOrders()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// TakeOrder marks a new order as in progress (staff only)
func (h *Handler) TakeOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.Store.TakeOrder(id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order taken",
		"order_id": id,
		"taken_by": middleware.GetUsername(c),
	})
}

// CloseOrder closes a new or in-progress order (staff only)
func (h *Handler) CloseOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.Store.CloseOrder(id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order closed", "order_id": id})
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

package routes

import (
	"restaurant-orders-api/auth"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, issuer *auth.Issuer) {
	// ── Public routes ──────────────────────────────────────────────
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	public := r.Group("/api")
	{
		public.GET("/menu", h.GetMenu)
		public.POST("/create-order", h.CreateOrder)
		public.POST("/verify-table", h.VerifyTable)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(issuer))
	{
		// Menu management
		staff.POST("/categories", h.AddCategory)
		staff.DELETE("/categories/:value", h.RemoveCategory)
		staff.POST("/add-dish", h.AddDish)
		staff.POST("/remove-dish", h.RemoveDish)

		// Table links
		staff.POST("/generate-table-link", h.GenerateTableLink)

		// Order management
		staff.GET("/orders", h.ListOrders)
		staff.POST("/take-order/:id", h.TakeOrder)
		staff.POST("/close-order/:id", h.CloseOrder)
	}
}

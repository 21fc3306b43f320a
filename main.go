package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-orders-api/auth"
	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database and starter menu
	db := config.InitDB(cfg.DBPath)
	if err := config.SeedMenu(db); err != nil {
		log.Fatal("Failed to seed menu:", err)
	}

	// Single fixed staff credential; swappable behind the interface
	creds, err := auth.NewStaticCredentials(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal("Failed to set up credentials:", err)
	}
	issuer := auth.NewIssuer(cfg.JWTSecret, creds, cfg.SessionTTL, cfg.TableTokenTTL)

	h := handlers.New(store.New(db), issuer, creds, cfg.TableLinkBase)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the static frontend
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Orders API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h, issuer)

	// Start server
	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package config

import (
	"log"
	"os"
	"time"

	"restaurant-orders-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port          string
	DBPath        string
	JWTSecret     []byte
	SessionTTL    time.Duration
	TableTokenTTL time.Duration
	AdminUsername string
	AdminPassword string
	TableLinkBase string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "menu.db"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "restaurant_orders_super_secret_2024")),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		TableTokenTTL: getDuration("TABLE_TOKEN_TTL", 30*24*time.Hour),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		TableLinkBase: getEnv("TABLE_LINK_BASE", "http://localhost:8080/redirect.html"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}

// InitDB opens the sqlite database and migrates the schema.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Dish{},
		&models.Order{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
	return db
}

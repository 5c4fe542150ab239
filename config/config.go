package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"macrotracker/models"
)

// LoadEnv reads .env when one exists; in containers the variables arrive
// through the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}
}

// ConnectDB opens the postgres connection described by the DB_* variables
// and creates the foods schema.
func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Food{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

// ServerAddr returns the listen address, ":8080" unless PORT overrides it.
func ServerAddr() string {
	return ":" + getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

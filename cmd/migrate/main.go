package main

import (
	"log"
	"os"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. AutoMigrate All Models
	models := model.All()
	log.Printf("Step 1: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Lookup tables
	log.Println("Step 2: Seeding lookup tables...")
	if err := database.SeedLookups(db); err != nil {
		log.Fatalf("Error: Seeding lookups failed: %v", err)
	}

	log.Println("Migration completed")
}

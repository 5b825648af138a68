package main

import (
	"log"
	"os"
	"strconv"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// Seeds the lookup tables and the development user that SKIP_AUTH resolves to.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding lookup tables...")
	if err := database.SeedLookups(db); err != nil {
		log.Fatalf("Error: Seeding lookups failed: %v", err)
	}

	devUserId := uint64(1)
	if raw := os.Getenv("DEV_USER_ID"); raw != "" {
		if devUserId, err = strconv.ParseUint(raw, 10, 64); err != nil {
			log.Fatalf("Error: DEV_USER_ID is not a number: %v", err)
		}
	}

	user := model.Gebruiker{
		Id:    uint(devUserId),
		Email: "dev@ouderschapsplan.local",
		Naam:  "Development",
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if res.Error != nil {
		log.Fatalf("Error: Seeding dev user failed: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("Dev user %d already exists, skipping...", devUserId)
	} else {
		log.Printf("Dev user %d created", devUserId)
	}

	log.Println("Seeding completed")
}

// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"herodle/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.CardInstance{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

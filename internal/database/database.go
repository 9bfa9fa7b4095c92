package database

import (
	"log"

	"github.com/Rokuonji/soundcompare/internal/config"
	"github.com/Rokuonji/soundcompare/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	// Early deployments created seed as a 32-bit integer, which overflows
	// for seeds above 2^31-1. Widen it when possible; the statement fails
	// harmlessly when the table does not exist yet or is already bigint.
	db.Exec("ALTER TABLE submissions ALTER COLUMN seed TYPE bigint")

	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

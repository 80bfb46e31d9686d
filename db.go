package main

import (
	"log"
	"os"
	"strings"

	"golfocr/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. Serving and migration require a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Extraction{}); err != nil {
			log.Printf("migration warning (extractions): %v", err)
		}
	}
	seedAdmin()
}

// seedAdmin creates the admin account when ADMIN_PASSWORD is set and the
// account does not exist yet. Idempotent.
func seedAdmin() {
	pw := os.Getenv("ADMIN_PASSWORD")
	if pw == "" {
		return
	}
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed warning: bcrypt failed: %v", err)
		return
	}
	if err := db.Create(&models.User{Username: "admin", HashedPassword: hashed}).Error; err != nil {
		log.Printf("seed warning: create admin failed: %v", err)
	}
}

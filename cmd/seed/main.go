package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/config"
	"nicehomes_backend/pkg/database"
)

// Bootstraps the first admin account. Safe to run repeatedly; an existing
// account with the same email is promoted rather than duplicated.
func main() {
	cfg := config.Load()

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	fullName := os.Getenv("SEED_ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}
	if fullName == "" {
		fullName = "Administrator"
	}

	db, err := database.Connect(cfg.DB.URL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := database.Migrate(db, &model.User{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		if existing.Role == model.RoleAdmin {
			log.Printf("Admin %s already exists", email)
			return
		}
		existing.Role = model.RoleAdmin
		if err := db.Save(&existing).Error; err != nil {
			log.Fatalf("Could not promote user: %v", err)
		}
		log.Printf("Promoted %s to admin", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Could not hash password: %v", err)
	}

	admin := model.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Could not create admin: %v", err)
	}

	log.Printf("Admin %s created", email)
}

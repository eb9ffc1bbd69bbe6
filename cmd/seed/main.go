// Seeds the bootstrap admin account. Safe to run repeatedly; an existing
// account with the same email is left untouched.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/haiminh-dev/ihk-case-api/internal/config"
	"github.com/haiminh-dev/ihk-case-api/internal/config/db"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
	"github.com/haiminh-dev/ihk-case-api/internal/repository"
)

const (
	adminEmail    = "admin@demo.com"
	adminPassword = "Admin123!"
)

func main() {
	config.LoadConfig()
	db.Init()

	if err := db.DB.AutoMigrate(&user.User{}); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	repos := repository.New(db.DB)
	admin := user.User{
		Email:    adminEmail,
		Name:     "Admin",
		Role:     user.RoleAdmin,
		Password: string(hash),
	}
	if err := repos.User.UpsertByEmail(&admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Printf("Seeded admin account %s", adminEmail)
}

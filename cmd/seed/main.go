// Command seed creates the initial admin account. It is meant to run
// once at deployment time and is safe to re-run: an existing admin with
// the configured username is left untouched.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/config"
	dbpkg "github.com/Cappu123/GorgieSalon-Booking-API/internal/db"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD must be set")
	}

	db := dbpkg.NewDB(cfg)

	var existing models.User
	err = db.Where("username = ?", cfg.SeedAdminUsername).First(&existing).Error
	if err == nil {
		log.Printf("admin %q already exists, nothing to do", cfg.SeedAdminUsername)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Username:     cfg.SeedAdminUsername,
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		Active:       true,
		Verified:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin %q created", admin.Username)
}

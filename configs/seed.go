package configs

import (
	"log"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Skips silently when the account already exists or the env is unset.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("admin seed skipped: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&entity.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.Admin{
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

package database

import (
	"errors"

	"transport-app/config"
	"transport-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
}

// SeedAdminUser creates the first login so a fresh install is usable.
func SeedAdminUser(db *gorm.DB) {
	log := config.GetLogger()

	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Error("seed: lookup admin user failed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("seed: hash admin password failed")
		return
	}

	admin := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@transport.local",
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Error("seed: create admin user failed")
		return
	}

	log.Info("seed: admin user created, change the default password")
}

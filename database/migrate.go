package database

import (
	"transport-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Client{},
		&models.Driver{},
		&models.Truck{},
		&models.Trip{},
		&models.Builty{},
		&models.Income{},
		&models.Maintenance{},
	)
}

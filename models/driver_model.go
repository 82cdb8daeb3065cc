package models

import (
	"time"

	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	DriverCode    string    `json:"driver_code" gorm:"unique"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number" gorm:"unique"`
	LicenseExpiry time.Time `json:"license_expiry"`
	JoiningDate   time.Time `json:"joining_date"`
	MonthlySalary float64   `json:"monthly_salary"`
	Address       string    `json:"address"`
	Status        string    `json:"status" gorm:"default:ACTIVE"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Truck struct {
	gorm.Model
	TruckCode       string    `json:"truck_code" gorm:"unique"`
	RegistrationNo  string    `json:"registration_no" gorm:"unique"`
	TruckModel      string    `json:"truck_model"`
	ManufactureYear int       `json:"manufacture_year"`
	ChassisNo       string    `json:"chassis_no"`
	EngineNo        string    `json:"engine_no"`
	CapacityTons    float64   `json:"capacity_tons"`
	PurchaseDate    time.Time `json:"purchase_date"`
	PurchasePrice   float64   `json:"purchase_price"`
	SalvageValue    float64   `json:"salvage_value"`
	UsefulLifeYears int       `json:"useful_life_years"`
	InsuranceExpiry time.Time `json:"insurance_expiry"`
	FitnessExpiry   time.Time `json:"fitness_expiry"`
	PermitExpiry    time.Time `json:"permit_expiry"`
	Status          string    `json:"status" gorm:"default:AVAILABLE"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Income struct {
	gorm.Model
	IncomeNumber string    `json:"income_number" gorm:"unique"`
	TruckID      uint      `json:"truck_id" gorm:"index"`
	TripID       *uint     `json:"trip_id" gorm:"index"`
	BuiltyID     *uint     `json:"builty_id" gorm:"index"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
	ReceivedDate time.Time `json:"received_date"`
	Payer        string    `json:"payer"`
	PaymentMode  string    `json:"payment_mode"`
	ReferenceNo  string    `json:"reference_no"`
	Notes        string    `json:"notes"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	Truck Truck `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Trip struct {
	gorm.Model
	TripNumber      string     `json:"trip_number" gorm:"unique"`
	TruckID         uint       `json:"truck_id" gorm:"index"`
	DriverID        uint       `json:"driver_id" gorm:"index"`
	ClientID        uint       `json:"client_id" gorm:"index"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	DistanceKm      float64    `json:"distance_km"`
	PlannedStart    time.Time  `json:"planned_start"`
	PlannedEnd      time.Time  `json:"planned_end"`
	ActualStart     *time.Time `json:"actual_start"`
	ActualEnd       *time.Time `json:"actual_end"`
	FreightAmount   float64    `json:"freight_amount"`
	AdvanceReceived float64    `json:"advance_received"`
	FuelCost        float64    `json:"fuel_cost"`
	TollCost        float64    `json:"toll_cost"`
	DriverAllowance float64    `json:"driver_allowance"`
	OtherExpense    float64    `json:"other_expense"`
	Status          string     `json:"status" gorm:"default:PLANNED"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int

	Truck  Truck  `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
	Driver Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TotalExpense is the running cost of the trip, freight excluded.
func (t *Trip) TotalExpense() float64 {
	return t.FuelCost + t.TollCost + t.DriverAllowance + t.OtherExpense
}

// Profit is freight earned minus every running cost.
func (t *Trip) Profit() float64 {
	return t.FreightAmount - t.TotalExpense()
}

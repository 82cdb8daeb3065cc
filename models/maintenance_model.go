package models

import (
	"time"

	"gorm.io/gorm"
)

type Maintenance struct {
	gorm.Model
	JobNumber       string     `json:"job_number" gorm:"unique"`
	TruckID         uint       `json:"truck_id" gorm:"index"`
	ServiceType     string     `json:"service_type"`
	Description     string     `json:"description"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	CompletedDate   *time.Time `json:"completed_date"`
	OdometerKm      float64    `json:"odometer_km"`
	LaborCost       float64    `json:"labor_cost"`
	PartsCost       float64    `json:"parts_cost"`
	TotalCost       float64    `json:"total_cost"`
	Workshop        string     `json:"workshop"`
	Technician      string     `json:"technician"`
	Priority        string     `json:"priority" gorm:"default:MEDIUM"`
	NextServiceDate *time.Time `json:"next_service_date"`
	NextServiceKm   float64    `json:"next_service_km"`
	Status          string     `json:"status" gorm:"default:SCHEDULED"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int

	Truck Truck `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
}

// Maintenance service types
const (
	ServiceOilChange      = "OIL_CHANGE"
	ServiceTireRotation   = "TIRE_ROTATION"
	ServiceBrakeService   = "BRAKE_SERVICE"
	ServiceBatteryService = "BATTERY_SERVICE"
	ServiceGeneral        = "GENERAL_SERVICE"
	ServiceRepair         = "REPAIR"
	ServiceInspection     = "INSPECTION"
)

// IsOverdueAsOf reports whether a still scheduled job has slipped past its date.
func (m *Maintenance) IsOverdueAsOf(now time.Time) bool {
	return m.Status == MaintenanceScheduled && m.ScheduledDate.Before(now)
}

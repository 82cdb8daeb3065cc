package models

import "gorm.io/gorm"

type Client struct {
	gorm.Model
	ClientCode   string  `json:"client_code" gorm:"unique"`
	ClientName   string  `json:"client_name"`
	GSTNumber    string  `json:"gst_number" gorm:"unique"`
	ContactName  string  `json:"contact_name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	CreditLimit  float64 `json:"credit_limit"`
	CreditPeriod int     `json:"credit_period_days"`
	Status       string  `json:"status" gorm:"default:ACTIVE"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

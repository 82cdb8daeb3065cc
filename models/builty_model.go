package models

import (
	"time"

	"transport-app/types"

	"gorm.io/gorm"
)

// Builty is the consignment note raised against a trip. Payment and delivery
// move on independent status tracks.
type Builty struct {
	gorm.Model
	BuiltyNo         types.SnowflakeID `json:"builty_no" gorm:"unique"`
	TripID           uint              `json:"trip_id" gorm:"index"`
	ClientID         uint              `json:"client_id" gorm:"index"`
	ConsignorName    string            `json:"consignor_name"`
	ConsignorAddress string            `json:"consignor_address"`
	ConsigneeName    string            `json:"consignee_name"`
	ConsigneeAddress string            `json:"consignee_address"`
	FromLocation     string            `json:"from_location"`
	ToLocation       string            `json:"to_location"`
	GoodsDescription string            `json:"goods_description"`
	Packages         int               `json:"packages"`
	ActualWeight     float64           `json:"actual_weight"`
	ChargedWeight    float64           `json:"charged_weight"`
	RatePerTon       float64           `json:"rate_per_ton"`
	FreightCharges   float64           `json:"freight_charges"`
	Hamali           float64           `json:"hamali"`
	DDCharges        float64           `json:"dd_charges"`
	OtherCharges     float64           `json:"other_charges"`
	GSTRate          float64           `json:"gst_rate"`
	CGSTAmount       float64           `json:"cgst_amount"`
	SGSTAmount       float64           `json:"sgst_amount"`
	IGSTAmount       float64           `json:"igst_amount"`
	GrandTotal       float64           `json:"grand_total"`
	BuiltyDate       time.Time         `json:"builty_date"`
	DueDate          time.Time         `json:"due_date"`
	PaidAmount       float64           `json:"paid_amount"`
	PaymentStatus    string            `json:"payment_status" gorm:"default:PENDING"`
	DeliveryStatus   string            `json:"delivery_status" gorm:"default:PENDING"`
	PdfPath          string            `json:"pdf_path"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int

	Trip   Trip   `json:"trip,omitempty" gorm:"foreignKey:TripID"`
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TaxableAmount is the charge base the GST is applied to.
func (b *Builty) TaxableAmount() float64 {
	return b.FreightCharges + b.Hamali + b.DDCharges + b.OtherCharges
}

// Balance is what the client still owes on this builty.
func (b *Builty) Balance() float64 {
	return b.GrandTotal - b.PaidAmount
}

func (b *Builty) IsUnpaid() bool {
	return b.PaymentStatus != PaymentPaid
}

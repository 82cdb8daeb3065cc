package models

// Truck status
const (
	TruckAvailable     = "AVAILABLE"
	TruckOnTrip        = "ON_TRIP"
	TruckInMaintenance = "IN_MAINTENANCE"
	TruckRetired       = "RETIRED"
)

// Driver status
const (
	DriverActive   = "ACTIVE"
	DriverOnTrip   = "ON_TRIP"
	DriverInactive = "INACTIVE"
)

// Client status
const (
	ClientActive   = "ACTIVE"
	ClientInactive = "INACTIVE"
)

// Trip status
const (
	TripPlanned   = "PLANNED"
	TripRunning   = "RUNNING"
	TripCompleted = "COMPLETED"
	TripCancelled = "CANCELLED"
)

// Builty payment status
const (
	PaymentPending = "PENDING"
	PaymentPartial = "PARTIAL"
	PaymentPaid    = "PAID"
	PaymentOverdue = "OVERDUE"
)

// Builty delivery status
const (
	DeliveryPending   = "PENDING"
	DeliveryInTransit = "IN_TRANSIT"
	DeliveryDelivered = "DELIVERED"
)

// Maintenance status
const (
	MaintenanceScheduled  = "SCHEDULED"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceCompleted  = "COMPLETED"
	MaintenanceCancelled  = "CANCELLED"
	MaintenanceOverdue    = "OVERDUE"
)

// Maintenance priority
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// Income categories
const (
	IncomeFreight        = "FREIGHT"
	IncomeRental         = "RENTAL"
	IncomeScrapSale      = "SCRAP_SALE"
	IncomeInsuranceClaim = "INSURANCE_CLAIM"
	IncomeOther          = "OTHER"
)

// Pagination carries page parameters in and totals out. Repositories fill
// TotalRows/TotalPages after running the count query.
type Pagination struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Sort       string `json:"sort,omitempty"`
	TotalRows  int64  `json:"total_rows"`
	TotalPages int    `json:"total_pages"`
}

func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 200 {
		p.Limit = 20
	}
}

func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p *Pagination) SetTotal(rows int64) {
	p.TotalRows = rows
	p.TotalPages = int((rows + int64(p.Limit) - 1) / int64(p.Limit))
}

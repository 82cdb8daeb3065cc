package repositories

import (
	"time"

	"transport-app/models"

	"gorm.io/gorm"
)

type BuiltyRepository struct {
	DB *gorm.DB
}

func NewBuiltyRepository(DB *gorm.DB) *BuiltyRepository {
	return &BuiltyRepository{DB: DB}
}

func (r *BuiltyRepository) Create(builty *models.Builty) error {
	return r.DB.Create(builty).Error
}

func (r *BuiltyRepository) GetByID(id uint) (*models.Builty, error) {
	var builty models.Builty
	err := r.DB.Preload("Trip").Preload("Client").First(&builty, id).Error
	return &builty, err
}

func (r *BuiltyRepository) Update(builty *models.Builty) error {
	return r.DB.Save(builty).Error
}

func (r *BuiltyRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Builty{}, id).Error
}

func (r *BuiltyRepository) CountByTrip(tripID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Builty{}).Where("trip_id = ?", tripID).Count(&count).Error
	return count, err
}

// BuiltyFilter narrows the builty listing. Zero values mean "no filter".
type BuiltyFilter struct {
	PaymentStatus  string
	DeliveryStatus string
	ClientID       uint
	TripID         uint
	From           time.Time
	To             time.Time
	Search         string
}

func (r *BuiltyRepository) GetAll(f BuiltyFilter, p *models.Pagination) ([]models.Builty, error) {
	p.Normalize()

	query := r.DB.Model(&models.Builty{})
	if f.PaymentStatus != "" {
		query = query.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", f.DeliveryStatus)
	}
	if f.ClientID != 0 {
		query = query.Where("client_id = ?", f.ClientID)
	}
	if f.TripID != 0 {
		query = query.Where("trip_id = ?", f.TripID)
	}
	if !f.From.IsZero() {
		query = query.Where("builty_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("builty_date <= ?", f.To)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("consignor_name LIKE ? OR consignee_name LIKE ? OR from_location LIKE ? OR to_location LIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var builties []models.Builty
	err := query.Preload("Client").
		Order("builty_date DESC").Offset(p.Offset()).Limit(p.Limit).Find(&builties).Error
	return builties, err
}

// OutstandingByClient sums the unpaid balance a client is carrying.
func (r *BuiltyRepository) OutstandingByClient(clientID uint) (float64, error) {
	var outstanding float64
	err := r.DB.Model(&models.Builty{}).
		Select("COALESCE(SUM(grand_total - paid_amount), 0)").
		Where("client_id = ? AND payment_status <> ?", clientID, models.PaymentPaid).
		Scan(&outstanding).Error
	return outstanding, err
}

// OutstandingTotal is the fleet-wide receivable figure for the dashboard.
func (r *BuiltyRepository) OutstandingTotal() (float64, error) {
	var outstanding float64
	err := r.DB.Model(&models.Builty{}).
		Select("COALESCE(SUM(grand_total - paid_amount), 0)").
		Where("payment_status <> ?", models.PaymentPaid).
		Scan(&outstanding).Error
	return outstanding, err
}

// OverdueCandidates lists unpaid builties whose due date has passed but that
// were not flagged OVERDUE yet.
func (r *BuiltyRepository) OverdueCandidates(asOf time.Time) ([]models.Builty, error) {
	var builties []models.Builty
	err := r.DB.Where("due_date < ?", asOf).
		Where("payment_status IN ?", []string{models.PaymentPending, models.PaymentPartial}).
		Find(&builties).Error
	return builties, err
}

// UnpaidWithClients fetches every open builty with its client loaded, for the
// reminder mailer to group by client.
func (r *BuiltyRepository) UnpaidWithClients() ([]models.Builty, error) {
	var builties []models.Builty
	err := r.DB.Preload("Client").
		Where("payment_status IN ?", []string{models.PaymentPartial, models.PaymentOverdue}).
		Or("payment_status = ? AND due_date < ?", models.PaymentPending, time.Now()).
		Order("client_id, due_date").Find(&builties).Error
	return builties, err
}

// BilledByClient returns the total billed per client inside the period,
// feeding the top-clients dashboard block.
type ClientBilling struct {
	ClientID   uint    `json:"client_id"`
	ClientName string  `json:"client_name"`
	Billed     float64 `json:"billed"`
}

func (r *BuiltyRepository) BilledByClient(from, to time.Time) ([]ClientBilling, error) {
	var rows []ClientBilling
	err := r.DB.Model(&models.Builty{}).
		Select("builties.client_id, clients.client_name, COALESCE(SUM(builties.grand_total), 0) AS billed").
		Joins("JOIN clients ON clients.id = builties.client_id").
		Where("builties.builty_date BETWEEN ? AND ?", from, to).
		Group("builties.client_id, clients.client_name").
		Scan(&rows).Error
	return rows, err
}

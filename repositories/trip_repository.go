package repositories

import (
	"time"

	"transport-app/models"

	"gorm.io/gorm"
)

type TripRepository struct {
	DB *gorm.DB
}

func NewTripRepository(DB *gorm.DB) *TripRepository {
	return &TripRepository{DB: DB}
}

func (r *TripRepository) Create(trip *models.Trip) error {
	return r.DB.Create(trip).Error
}

func (r *TripRepository) GetByID(id uint) (*models.Trip, error) {
	var trip models.Trip
	err := r.DB.Preload("Truck").Preload("Driver").Preload("Client").First(&trip, id).Error
	return &trip, err
}

func (r *TripRepository) Update(trip *models.Trip) error {
	return r.DB.Save(trip).Error
}

func (r *TripRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Trip{}, id).Error
}

// TripFilter narrows the trip listing. Zero values mean "no filter".
type TripFilter struct {
	Status   string
	TruckID  uint
	DriverID uint
	ClientID uint
	From     time.Time
	To       time.Time
	Search   string
}

func (r *TripRepository) GetAll(f TripFilter, p *models.Pagination) ([]models.Trip, error) {
	p.Normalize()

	query := r.DB.Model(&models.Trip{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.TruckID != 0 {
		query = query.Where("truck_id = ?", f.TruckID)
	}
	if f.DriverID != 0 {
		query = query.Where("driver_id = ?", f.DriverID)
	}
	if f.ClientID != 0 {
		query = query.Where("client_id = ?", f.ClientID)
	}
	if !f.From.IsZero() {
		query = query.Where("planned_start >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("planned_start <= ?", f.To)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("trip_number LIKE ? OR origin LIKE ? OR destination LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var trips []models.Trip
	err := query.Preload("Truck").Preload("Driver").Preload("Client").
		Order("planned_start DESC").Offset(p.Offset()).Limit(p.Limit).Find(&trips).Error
	return trips, err
}

// CountOverlapping counts open trips already booked on the truck inside the
// planned window. Completed and cancelled trips do not block.
func (r *TripRepository) CountOverlapping(truckID uint, start, end time.Time, excludeID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Trip{}).
		Where("truck_id = ? AND id <> ?", truckID, excludeID).
		Where("status IN ?", []string{models.TripPlanned, models.TripRunning}).
		Where("planned_start < ? AND planned_end > ?", end, start).
		Count(&count).Error
	return count, err
}

func (r *TripRepository) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.DB.Model(&models.Trip{}).
		Select("status, COUNT(*) AS total").
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Total
	}
	return counts, nil
}

// ExpenseTotal sums every running cost across trips in the period.
func (r *TripRepository) ExpenseTotal(from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&models.Trip{}).
		Select("COALESCE(SUM(fuel_cost + toll_cost + driver_allowance + other_expense), 0)").
		Where("planned_start BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}

package repositories

import (
	"time"

	"transport-app/models"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	DB *gorm.DB
}

func NewMaintenanceRepository(DB *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{DB: DB}
}

func (r *MaintenanceRepository) Create(job *models.Maintenance) error {
	return r.DB.Create(job).Error
}

func (r *MaintenanceRepository) GetByID(id uint) (*models.Maintenance, error) {
	var job models.Maintenance
	err := r.DB.Preload("Truck").First(&job, id).Error
	return &job, err
}

func (r *MaintenanceRepository) Update(job *models.Maintenance) error {
	return r.DB.Save(job).Error
}

func (r *MaintenanceRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Maintenance{}, id).Error
}

type MaintenanceFilter struct {
	TruckID     uint
	Status      string
	ServiceType string
	From        time.Time
	To          time.Time
}

func (r *MaintenanceRepository) GetAll(f MaintenanceFilter, p *models.Pagination) ([]models.Maintenance, error) {
	p.Normalize()

	query := r.DB.Model(&models.Maintenance{})
	if f.TruckID != 0 {
		query = query.Where("truck_id = ?", f.TruckID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.ServiceType != "" {
		query = query.Where("service_type = ?", f.ServiceType)
	}
	if !f.From.IsZero() {
		query = query.Where("scheduled_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("scheduled_date <= ?", f.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var jobs []models.Maintenance
	err := query.Preload("Truck").
		Order("scheduled_date DESC").Offset(p.Offset()).Limit(p.Limit).Find(&jobs).Error
	return jobs, err
}

func (r *MaintenanceRepository) CostByTruck(truckID uint, from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&models.Maintenance{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("truck_id = ? AND status = ?", truckID, models.MaintenanceCompleted).
		Where("completed_date BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *MaintenanceRepository) CostTotal(from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&models.Maintenance{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("status = ? AND completed_date BETWEEN ? AND ?", models.MaintenanceCompleted, from, to).
		Scan(&total).Error
	return total, err
}

// Upcoming lists jobs scheduled inside the window, soonest first.
func (r *MaintenanceRepository) Upcoming(from, to time.Time) ([]models.Maintenance, error) {
	var jobs []models.Maintenance
	err := r.DB.Preload("Truck").
		Where("status = ? AND scheduled_date BETWEEN ? AND ?", models.MaintenanceScheduled, from, to).
		Order("scheduled_date").Find(&jobs).Error
	return jobs, err
}

// OverdueCandidates lists jobs still SCHEDULED past their date.
func (r *MaintenanceRepository) OverdueCandidates(asOf time.Time) ([]models.Maintenance, error) {
	var jobs []models.Maintenance
	err := r.DB.Where("status = ? AND scheduled_date < ?", models.MaintenanceScheduled, asOf).
		Find(&jobs).Error
	return jobs, err
}

func (r *MaintenanceRepository) MaxID() (int64, error) {
	var max int64
	err := r.DB.Model(&models.Maintenance{}).Unscoped().
		Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}

package repositories

import (
	"time"

	"transport-app/models"

	"gorm.io/gorm"
)

type TruckRepository struct {
	DB *gorm.DB
}

func NewTruckRepository(DB *gorm.DB) *TruckRepository {
	return &TruckRepository{DB: DB}
}

func (r *TruckRepository) Create(truck *models.Truck) error {
	return r.DB.Create(truck).Error
}

func (r *TruckRepository) GetByID(id uint) (*models.Truck, error) {
	var truck models.Truck
	err := r.DB.First(&truck, id).Error
	return &truck, err
}

func (r *TruckRepository) Update(truck *models.Truck) error {
	return r.DB.Save(truck).Error
}

func (r *TruckRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Truck{}, id).Error
}

func (r *TruckRepository) GetAll(search, status string, p *models.Pagination) ([]models.Truck, error) {
	p.Normalize()

	query := r.DB.Model(&models.Truck{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("registration_no LIKE ? OR truck_model LIKE ? OR truck_code LIKE ?", like, like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var trucks []models.Truck
	err := query.Order("truck_code").Offset(p.Offset()).Limit(p.Limit).Find(&trucks).Error
	return trucks, err
}

func (r *TruckRepository) CountByRegistration(regNo string, excludeID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Truck{}).
		Where("registration_no = ? AND id <> ?", regNo, excludeID).
		Count(&count).Error
	return count, err
}

// DocumentsExpiring lists trucks with insurance, fitness or permit lapsing
// inside the window.
func (r *TruckRepository) DocumentsExpiring(from, to time.Time) ([]models.Truck, error) {
	var trucks []models.Truck
	err := r.DB.Where(
		"insurance_expiry BETWEEN ? AND ? OR fitness_expiry BETWEEN ? AND ? OR permit_expiry BETWEEN ? AND ?",
		from, to, from, to, from, to,
	).Order("truck_code").Find(&trucks).Error
	return trucks, err
}

func (r *TruckRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&models.Truck{}).Where("id = ?", id).Update("status", status).Error
}

func (r *TruckRepository) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.DB.Model(&models.Truck{}).
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

func (r *TruckRepository) MaxID() (int64, error) {
	var max int64
	err := r.DB.Model(&models.Truck{}).Unscoped().
		Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}

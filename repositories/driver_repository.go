package repositories

import (
	"time"

	"transport-app/models"

	"gorm.io/gorm"
)

type DriverRepository struct {
	DB *gorm.DB
}

func NewDriverRepository(DB *gorm.DB) *DriverRepository {
	return &DriverRepository{DB: DB}
}

func (r *DriverRepository) Create(driver *models.Driver) error {
	return r.DB.Create(driver).Error
}

func (r *DriverRepository) GetByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	err := r.DB.First(&driver, id).Error
	return &driver, err
}

func (r *DriverRepository) Update(driver *models.Driver) error {
	return r.DB.Save(driver).Error
}

func (r *DriverRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Driver{}, id).Error
}

func (r *DriverRepository) GetAll(search, status string, p *models.Pagination) ([]models.Driver, error) {
	p.Normalize()

	query := r.DB.Model(&models.Driver{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR license_number LIKE ? OR phone LIKE ?", like, like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var drivers []models.Driver
	err := query.Order("driver_code").Offset(p.Offset()).Limit(p.Limit).Find(&drivers).Error
	return drivers, err
}

func (r *DriverRepository) CountByLicense(license string, excludeID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Driver{}).
		Where("license_number = ? AND id <> ?", license, excludeID).
		Count(&count).Error
	return count, err
}

// LicenseExpiring lists drivers whose license lapses inside the window.
func (r *DriverRepository) LicenseExpiring(from, to time.Time) ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.DB.Where("license_expiry BETWEEN ? AND ?", from, to).
		Order("license_expiry").Find(&drivers).Error
	return drivers, err
}

func (r *DriverRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&models.Driver{}).Where("id = ?", id).Update("status", status).Error
}

func (r *DriverRepository) MaxID() (int64, error) {
	var max int64
	err := r.DB.Model(&models.Driver{}).Unscoped().
		Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}

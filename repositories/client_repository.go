package repositories

import (
	"transport-app/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	DB *gorm.DB
}

func NewClientRepository(DB *gorm.DB) *ClientRepository {
	return &ClientRepository{DB: DB}
}

func (r *ClientRepository) Create(client *models.Client) error {
	return r.DB.Create(client).Error
}

func (r *ClientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.DB.First(&client, id).Error
	return &client, err
}

func (r *ClientRepository) Update(client *models.Client) error {
	return r.DB.Save(client).Error
}

func (r *ClientRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Client{}, id).Error
}

// GetAll returns a page of clients, optionally narrowed by a free text search
// over name, city and GST number, and by status.
func (r *ClientRepository) GetAll(search, status string, p *models.Pagination) ([]models.Client, error) {
	p.Normalize()

	query := r.DB.Model(&models.Client{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("client_name LIKE ? OR city LIKE ? OR gst_number LIKE ?", like, like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var clients []models.Client
	err := query.Order("client_code").Offset(p.Offset()).Limit(p.Limit).Find(&clients).Error
	return clients, err
}

// CountByGSTIN counts clients holding the GSTIN, skipping excludeID so an
// update does not collide with its own row.
func (r *ClientRepository) CountByGSTIN(gstin string, excludeID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Client{}).
		Where("gst_number = ? AND id <> ?", gstin, excludeID).
		Count(&count).Error
	return count, err
}

// MaxID feeds sequential client code generation.
func (r *ClientRepository) MaxID() (int64, error) {
	var max int64
	err := r.DB.Model(&models.Client{}).Unscoped().
		Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}

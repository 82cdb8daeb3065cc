package repositories

import (
	"time"

	"transport-app/models"

	"gorm.io/gorm"
)

type IncomeRepository struct {
	DB *gorm.DB
}

func NewIncomeRepository(DB *gorm.DB) *IncomeRepository {
	return &IncomeRepository{DB: DB}
}

func (r *IncomeRepository) Create(income *models.Income) error {
	return r.DB.Create(income).Error
}

func (r *IncomeRepository) GetByID(id uint) (*models.Income, error) {
	var income models.Income
	err := r.DB.Preload("Truck").First(&income, id).Error
	return &income, err
}

func (r *IncomeRepository) Update(income *models.Income) error {
	return r.DB.Save(income).Error
}

func (r *IncomeRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Income{}, id).Error
}

type IncomeFilter struct {
	TruckID  uint
	Category string
	From     time.Time
	To       time.Time
}

func (r *IncomeRepository) GetAll(f IncomeFilter, p *models.Pagination) ([]models.Income, error) {
	p.Normalize()

	query := r.DB.Model(&models.Income{})
	if f.TruckID != 0 {
		query = query.Where("truck_id = ?", f.TruckID)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if !f.From.IsZero() {
		query = query.Where("received_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("received_date <= ?", f.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	p.SetTotal(total)

	var incomes []models.Income
	err := query.Preload("Truck").
		Order("received_date DESC").Offset(p.Offset()).Limit(p.Limit).Find(&incomes).Error
	return incomes, err
}

func (r *IncomeRepository) TotalByTruck(truckID uint, from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("truck_id = ? AND received_date BETWEEN ? AND ?", truckID, from, to).
		Scan(&total).Error
	return total, err
}

func (r *IncomeRepository) TotalByCategory(from, to time.Time) (map[string]float64, error) {
	type row struct {
		Category string
		Total    float64
	}
	var rows []row
	err := r.DB.Model(&models.Income{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("received_date BETWEEN ? AND ?", from, to).
		Group("category").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, rw := range rows {
		totals[rw.Category] = rw.Total
	}
	return totals, nil
}

// ForYear fetches the year's records; monthly bucketing happens in the
// service so the SQL stays portable across the three supported drivers.
func (r *IncomeRepository) ForYear(year int) ([]models.Income, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var incomes []models.Income
	err := r.DB.Where("received_date >= ? AND received_date < ?", from, to).
		Order("received_date").Find(&incomes).Error
	return incomes, err
}

func (r *IncomeRepository) Total(from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("received_date BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *IncomeRepository) MaxID() (int64, error) {
	var max int64
	err := r.DB.Model(&models.Income{}).Unscoped().
		Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}

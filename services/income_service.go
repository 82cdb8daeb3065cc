package services

import (
	"time"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/utils"
)

type IncomeService struct {
	incomes *repositories.IncomeRepository
	trucks  *repositories.TruckRepository
}

func NewIncomeService(incomes *repositories.IncomeRepository, trucks *repositories.TruckRepository) *IncomeService {
	return &IncomeService{incomes: incomes, trucks: trucks}
}

var paymentModes = map[string]bool{
	"CASH": true, "CHEQUE": true, "UPI": true, "BANK_TRANSFER": true,
}

var incomeCategories = map[string]bool{
	models.IncomeFreight:        true,
	models.IncomeRental:         true,
	models.IncomeScrapSale:      true,
	models.IncomeInsuranceClaim: true,
	models.IncomeOther:          true,
}

type IncomeInput struct {
	TruckID      uint    `json:"truck_id" validate:"required"`
	TripID       *uint   `json:"trip_id"`
	BuiltyID     *uint   `json:"builty_id"`
	Category     string  `json:"category" validate:"required"`
	Amount       float64 `json:"amount" validate:"gt=0"`
	ReceivedDate string  `json:"received_date" validate:"required"`
	Payer        string  `json:"payer"`
	PaymentMode  string  `json:"payment_mode"`
	ReferenceNo  string  `json:"reference_no"`
	Notes        string  `json:"notes"`
}

func (s *IncomeService) Create(input *IncomeInput, userID int) (*models.Income, error) {
	income, err := s.buildIncome(input)
	if err != nil {
		return nil, err
	}

	maxID, err := s.incomes.MaxID()
	if err != nil {
		return nil, err
	}
	income.IncomeNumber = utils.SequentialCode("INC", maxID)
	income.CreatedBy = userID

	if err := s.incomes.Create(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *IncomeService) Update(id uint, input *IncomeInput, userID int) (*models.Income, error) {
	existing, err := s.incomes.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildIncome(input)
	if err != nil {
		return nil, err
	}

	existing.TruckID = updated.TruckID
	existing.TripID = updated.TripID
	existing.BuiltyID = updated.BuiltyID
	existing.Category = updated.Category
	existing.Amount = updated.Amount
	existing.ReceivedDate = updated.ReceivedDate
	existing.Payer = updated.Payer
	existing.PaymentMode = updated.PaymentMode
	existing.ReferenceNo = updated.ReferenceNo
	existing.Notes = updated.Notes
	existing.UpdatedBy = userID

	if err := s.incomes.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *IncomeService) GetByID(id uint) (*models.Income, error) {
	return s.incomes.GetByID(id)
}

func (s *IncomeService) GetAll(f repositories.IncomeFilter, p *models.Pagination) ([]models.Income, error) {
	return s.incomes.GetAll(f, p)
}

func (s *IncomeService) Delete(id uint, userID int) error {
	income, err := s.incomes.GetByID(id)
	if err != nil {
		return err
	}

	income.DeletedBy = userID
	if err := s.incomes.Update(income); err != nil {
		return err
	}
	return s.incomes.Delete(id)
}

func (s *IncomeService) TotalByTruck(truckID uint, from, to time.Time) (float64, error) {
	if _, err := s.trucks.GetByID(truckID); err != nil {
		return 0, err
	}
	return s.incomes.TotalByTruck(truckID, from, to)
}

func (s *IncomeService) TotalByCategory(from, to time.Time) (map[string]float64, error) {
	return s.incomes.TotalByCategory(from, to)
}

// MonthlyBucket is one line of the yearly statement.
type MonthlyBucket struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// MonthlyStatement buckets the year's income into twelve months.
func (s *IncomeService) MonthlyStatement(year int) ([]MonthlyBucket, error) {
	incomes, err := s.incomes.ForYear(year)
	if err != nil {
		return nil, err
	}

	buckets := make([]MonthlyBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1).String()
	}
	for _, income := range incomes {
		idx := int(income.ReceivedDate.Month()) - 1
		buckets[idx].Total = utils.RoundMoney(buckets[idx].Total + income.Amount)
		buckets[idx].Count++
	}
	return buckets, nil
}

func (s *IncomeService) buildIncome(input *IncomeInput) (*models.Income, error) {
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid income data: %v", err)
	}
	if !incomeCategories[input.Category] {
		return nil, NewValidationError("unknown income category %s", input.Category)
	}
	if input.PaymentMode != "" && !paymentModes[input.PaymentMode] {
		return nil, NewValidationError("unknown payment mode %s", input.PaymentMode)
	}

	if _, err := s.trucks.GetByID(input.TruckID); err != nil {
		return nil, err
	}

	received, err := utils.ParseDate(input.ReceivedDate)
	if err != nil {
		return nil, NewValidationError("received_date: %v", err)
	}

	return &models.Income{
		TruckID:      input.TruckID,
		TripID:       input.TripID,
		BuiltyID:     input.BuiltyID,
		Category:     input.Category,
		Amount:       utils.RoundMoney(input.Amount),
		ReceivedDate: received,
		Payer:        input.Payer,
		PaymentMode:  input.PaymentMode,
		ReferenceNo:  input.ReferenceNo,
		Notes:        input.Notes,
	}, nil
}

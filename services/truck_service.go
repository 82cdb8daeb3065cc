package services

import (
	"strings"
	"time"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/utils"
)

type TruckService struct {
	trucks *repositories.TruckRepository
}

func NewTruckService(trucks *repositories.TruckRepository) *TruckService {
	return &TruckService{trucks: trucks}
}

type TruckInput struct {
	RegistrationNo  string  `json:"registration_no" validate:"required,min=5"`
	TruckModel      string  `json:"truck_model" validate:"required"`
	ManufactureYear int     `json:"manufacture_year" validate:"gte=1980"`
	ChassisNo       string  `json:"chassis_no"`
	EngineNo        string  `json:"engine_no"`
	CapacityTons    float64 `json:"capacity_tons" validate:"gt=0"`
	PurchaseDate    string  `json:"purchase_date" validate:"required"`
	PurchasePrice   float64 `json:"purchase_price" validate:"gt=0"`
	SalvageValue    float64 `json:"salvage_value" validate:"gte=0"`
	UsefulLifeYears int     `json:"useful_life_years" validate:"gt=0"`
	InsuranceExpiry string  `json:"insurance_expiry"`
	FitnessExpiry   string  `json:"fitness_expiry"`
	PermitExpiry    string  `json:"permit_expiry"`
}

func (s *TruckService) Create(input *TruckInput, userID int) (*models.Truck, error) {
	truck, err := s.buildTruck(input, 0)
	if err != nil {
		return nil, err
	}

	maxID, err := s.trucks.MaxID()
	if err != nil {
		return nil, err
	}
	truck.TruckCode = utils.SequentialCode("TRK", maxID)
	truck.Status = models.TruckAvailable
	truck.CreatedBy = userID

	if err := s.trucks.Create(truck); err != nil {
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) Update(id uint, input *TruckInput, userID int) (*models.Truck, error) {
	existing, err := s.trucks.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildTruck(input, id)
	if err != nil {
		return nil, err
	}

	existing.RegistrationNo = updated.RegistrationNo
	existing.TruckModel = updated.TruckModel
	existing.ManufactureYear = updated.ManufactureYear
	existing.ChassisNo = updated.ChassisNo
	existing.EngineNo = updated.EngineNo
	existing.CapacityTons = updated.CapacityTons
	existing.PurchaseDate = updated.PurchaseDate
	existing.PurchasePrice = updated.PurchasePrice
	existing.SalvageValue = updated.SalvageValue
	existing.UsefulLifeYears = updated.UsefulLifeYears
	existing.InsuranceExpiry = updated.InsuranceExpiry
	existing.FitnessExpiry = updated.FitnessExpiry
	existing.PermitExpiry = updated.PermitExpiry
	existing.UpdatedBy = userID

	if err := s.trucks.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TruckService) GetByID(id uint) (*models.Truck, error) {
	return s.trucks.GetByID(id)
}

func (s *TruckService) GetAll(search, status string, p *models.Pagination) ([]models.Truck, error) {
	return s.trucks.GetAll(search, status, p)
}

func (s *TruckService) Delete(id uint, userID int) error {
	truck, err := s.trucks.GetByID(id)
	if err != nil {
		return err
	}
	if truck.Status == models.TruckOnTrip || truck.Status == models.TruckInMaintenance {
		return NewValidationError("truck %s is %s", truck.TruckCode, truck.Status)
	}

	truck.DeletedBy = userID
	if err := s.trucks.Update(truck); err != nil {
		return err
	}
	return s.trucks.Delete(id)
}

// Retire takes a truck out of the operating fleet for good.
func (s *TruckService) Retire(id uint, userID int) (*models.Truck, error) {
	truck, err := s.trucks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if truck.Status == models.TruckOnTrip || truck.Status == models.TruckInMaintenance {
		return nil, NewValidationError("cannot retire truck %s while %s", truck.TruckCode, truck.Status)
	}
	if truck.Status == models.TruckRetired {
		return nil, NewValidationError("truck %s is already retired", truck.TruckCode)
	}

	truck.Status = models.TruckRetired
	truck.UpdatedBy = userID
	if err := s.trucks.Update(truck); err != nil {
		return nil, err
	}
	return truck, nil
}

// Valuation reports the depreciated value of a truck as of a date.
type TruckValuation struct {
	TruckCode          string  `json:"truck_code"`
	PurchasePrice      float64 `json:"purchase_price"`
	AnnualDepreciation float64 `json:"annual_depreciation"`
	BookValue          float64 `json:"book_value"`
}

func (s *TruckService) Valuation(id uint, asOf time.Time) (*TruckValuation, error) {
	truck, err := s.trucks.GetByID(id)
	if err != nil {
		return nil, err
	}

	return &TruckValuation{
		TruckCode:          truck.TruckCode,
		PurchasePrice:      truck.PurchasePrice,
		AnnualDepreciation: AnnualDepreciation(truck.PurchasePrice, truck.SalvageValue, truck.UsefulLifeYears),
		BookValue:          BookValue(truck.PurchasePrice, truck.SalvageValue, truck.UsefulLifeYears, truck.PurchaseDate, asOf),
	}, nil
}

// DocumentsExpiring reports insurance/fitness/permit documents lapsing within
// the coming days, already lapsed ones included.
func (s *TruckService) DocumentsExpiring(withinDays int) ([]models.Truck, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	now := time.Now()
	return s.trucks.DocumentsExpiring(now.AddDate(-10, 0, 0), now.AddDate(0, 0, withinDays))
}

func (s *TruckService) buildTruck(input *TruckInput, excludeID uint) (*models.Truck, error) {
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid truck data: %v", err)
	}
	if input.SalvageValue > input.PurchasePrice {
		return nil, NewValidationError("salvage value exceeds purchase price")
	}

	regNo := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input.RegistrationNo), " ", ""))
	count, err := s.trucks.CountByRegistration(regNo, excludeID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewValidationError("registration number %s already registered", regNo)
	}

	purchaseDate, err := utils.ParseDate(input.PurchaseDate)
	if err != nil {
		return nil, NewValidationError("purchase_date: %v", err)
	}

	truck := &models.Truck{
		RegistrationNo:  regNo,
		TruckModel:      input.TruckModel,
		ManufactureYear: input.ManufactureYear,
		ChassisNo:       input.ChassisNo,
		EngineNo:        input.EngineNo,
		CapacityTons:    input.CapacityTons,
		PurchaseDate:    purchaseDate,
		PurchasePrice:   input.PurchasePrice,
		SalvageValue:    input.SalvageValue,
		UsefulLifeYears: input.UsefulLifeYears,
	}

	for field, value := range map[*time.Time]string{
		&truck.InsuranceExpiry: input.InsuranceExpiry,
		&truck.FitnessExpiry:   input.FitnessExpiry,
		&truck.PermitExpiry:    input.PermitExpiry,
	} {
		if value == "" {
			continue
		}
		parsed, err := utils.ParseDate(value)
		if err != nil {
			return nil, NewValidationError("invalid expiry date %s", value)
		}
		*field = parsed
	}

	return truck, nil
}

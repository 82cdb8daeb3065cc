package services

import (
	"strings"
	"time"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/utils"
)

type DriverService struct {
	drivers *repositories.DriverRepository
}

func NewDriverService(drivers *repositories.DriverRepository) *DriverService {
	return &DriverService{drivers: drivers}
}

type DriverInput struct {
	Name          string  `json:"name" validate:"required,min=3"`
	Phone         string  `json:"phone" validate:"required"`
	LicenseNumber string  `json:"license_number" validate:"required,min=5"`
	LicenseExpiry string  `json:"license_expiry" validate:"required"`
	JoiningDate   string  `json:"joining_date"`
	MonthlySalary float64 `json:"monthly_salary" validate:"gte=0"`
	Address       string  `json:"address"`
}

func (s *DriverService) Create(input *DriverInput, userID int) (*models.Driver, error) {
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid driver data: %v", err)
	}

	license := strings.ToUpper(strings.TrimSpace(input.LicenseNumber))
	if err := s.checkLicense(license, 0); err != nil {
		return nil, err
	}

	expiry, err := utils.ParseDate(input.LicenseExpiry)
	if err != nil {
		return nil, NewValidationError("license_expiry: %v", err)
	}

	joining := time.Now()
	if input.JoiningDate != "" {
		if joining, err = utils.ParseDate(input.JoiningDate); err != nil {
			return nil, NewValidationError("joining_date: %v", err)
		}
	}

	maxID, err := s.drivers.MaxID()
	if err != nil {
		return nil, err
	}

	driver := models.Driver{
		DriverCode:    utils.SequentialCode("DRV", maxID),
		Name:          input.Name,
		Phone:         input.Phone,
		LicenseNumber: license,
		LicenseExpiry: expiry,
		JoiningDate:   joining,
		MonthlySalary: input.MonthlySalary,
		Address:       input.Address,
		Status:        models.DriverActive,
		CreatedBy:     userID,
	}

	if err := s.drivers.Create(&driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) Update(id uint, input *DriverInput, userID int) (*models.Driver, error) {
	driver, err := s.drivers.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid driver data: %v", err)
	}

	license := strings.ToUpper(strings.TrimSpace(input.LicenseNumber))
	if err := s.checkLicense(license, id); err != nil {
		return nil, err
	}

	expiry, err := utils.ParseDate(input.LicenseExpiry)
	if err != nil {
		return nil, NewValidationError("license_expiry: %v", err)
	}

	driver.Name = input.Name
	driver.Phone = input.Phone
	driver.LicenseNumber = license
	driver.LicenseExpiry = expiry
	driver.MonthlySalary = input.MonthlySalary
	driver.Address = input.Address
	driver.UpdatedBy = userID

	if err := s.drivers.Update(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) GetByID(id uint) (*models.Driver, error) {
	return s.drivers.GetByID(id)
}

func (s *DriverService) GetAll(search, status string, p *models.Pagination) ([]models.Driver, error) {
	return s.drivers.GetAll(search, status, p)
}

func (s *DriverService) Delete(id uint, userID int) error {
	driver, err := s.drivers.GetByID(id)
	if err != nil {
		return err
	}
	if driver.Status == models.DriverOnTrip {
		return NewValidationError("driver %s is on a trip", driver.DriverCode)
	}

	driver.DeletedBy = userID
	if err := s.drivers.Update(driver); err != nil {
		return err
	}
	return s.drivers.Delete(id)
}

// SetStatus is the manual flip between ACTIVE and INACTIVE. ON_TRIP is owned
// by the trip lifecycle and cannot be set by hand.
func (s *DriverService) SetStatus(id uint, status string, userID int) (*models.Driver, error) {
	if status != models.DriverActive && status != models.DriverInactive {
		return nil, NewValidationError("invalid driver status %s", status)
	}

	driver, err := s.drivers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver.Status == models.DriverOnTrip {
		return nil, NewValidationError("driver %s is on a trip", driver.DriverCode)
	}

	driver.Status = status
	driver.UpdatedBy = userID
	if err := s.drivers.Update(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// LicenseExpiring reports licenses lapsing within the coming days, already
// expired ones included.
func (s *DriverService) LicenseExpiring(withinDays int) ([]models.Driver, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	now := time.Now()
	return s.drivers.LicenseExpiring(now.AddDate(-10, 0, 0), now.AddDate(0, 0, withinDays))
}

func (s *DriverService) checkLicense(license string, excludeID uint) error {
	count, err := s.drivers.CountByLicense(license, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("license number %s already registered", license)
	}
	return nil
}

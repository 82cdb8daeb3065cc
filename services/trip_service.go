package services

import (
	"fmt"
	"time"

	"transport-app/controllers/idgen"
	"transport-app/models"
	"transport-app/repositories"
	"transport-app/utils"
)

type TripService struct {
	trips    *repositories.TripRepository
	trucks   *repositories.TruckRepository
	drivers  *repositories.DriverRepository
	clients  *repositories.ClientRepository
	incomes  *repositories.IncomeRepository
	builties *repositories.BuiltyRepository
}

func NewTripService(
	trips *repositories.TripRepository,
	trucks *repositories.TruckRepository,
	drivers *repositories.DriverRepository,
	clients *repositories.ClientRepository,
	incomes *repositories.IncomeRepository,
	builties *repositories.BuiltyRepository,
) *TripService {
	return &TripService{
		trips:    trips,
		trucks:   trucks,
		drivers:  drivers,
		clients:  clients,
		incomes:  incomes,
		builties: builties,
	}
}

type TripInput struct {
	TruckID         uint    `json:"truck_id" validate:"required"`
	DriverID        uint    `json:"driver_id" validate:"required"`
	ClientID        uint    `json:"client_id" validate:"required"`
	Origin          string  `json:"origin" validate:"required"`
	Destination     string  `json:"destination" validate:"required"`
	DistanceKm      float64 `json:"distance_km" validate:"gt=0"`
	PlannedStart    string  `json:"planned_start" validate:"required"`
	PlannedEnd      string  `json:"planned_end" validate:"required"`
	FreightAmount   float64 `json:"freight_amount" validate:"gte=0"`
	AdvanceReceived float64 `json:"advance_received" validate:"gte=0"`
}

// Plan books a truck and driver for a client movement. The truck must be
// AVAILABLE, the driver ACTIVE, the client ACTIVE, and the truck free of
// overlapping open trips in the window.
func (s *TripService) Plan(input *TripInput, userID int) (*models.Trip, error) {
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid trip data: %v", err)
	}

	start, err := utils.ParseDate(input.PlannedStart)
	if err != nil {
		return nil, NewValidationError("planned_start: %v", err)
	}
	end, err := utils.ParseDate(input.PlannedEnd)
	if err != nil {
		return nil, NewValidationError("planned_end: %v", err)
	}
	if !end.After(start) {
		return nil, NewValidationError("planned_end must be after planned_start")
	}
	if input.AdvanceReceived > input.FreightAmount {
		return nil, NewValidationError("advance %.2f exceeds freight %.2f", input.AdvanceReceived, input.FreightAmount)
	}

	truck, err := s.trucks.GetByID(input.TruckID)
	if err != nil {
		return nil, err
	}
	if truck.Status != models.TruckAvailable {
		return nil, NewValidationError("truck %s is %s", truck.TruckCode, truck.Status)
	}

	driver, err := s.drivers.GetByID(input.DriverID)
	if err != nil {
		return nil, err
	}
	if driver.Status != models.DriverActive {
		return nil, NewValidationError("driver %s is %s", driver.DriverCode, driver.Status)
	}
	if driver.LicenseExpiry.Before(end) {
		return nil, NewValidationError("driver %s license expires %s, before trip end",
			driver.DriverCode, driver.LicenseExpiry.Format("2006-01-02"))
	}

	client, err := s.clients.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Status != models.ClientActive {
		return nil, NewValidationError("client %s is inactive", client.ClientCode)
	}

	overlapping, err := s.trips.CountOverlapping(input.TruckID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, NewValidationError("truck %s already booked in that window", truck.TruckCode)
	}

	trip := models.Trip{
		TripNumber:      idgen.TripNumber(),
		TruckID:         input.TruckID,
		DriverID:        input.DriverID,
		ClientID:        input.ClientID,
		Origin:          input.Origin,
		Destination:     input.Destination,
		DistanceKm:      input.DistanceKm,
		PlannedStart:    start,
		PlannedEnd:      end,
		FreightAmount:   utils.RoundMoney(input.FreightAmount),
		AdvanceReceived: utils.RoundMoney(input.AdvanceReceived),
		Status:          models.TripPlanned,
		CreatedBy:       userID,
	}

	if err := s.trips.Create(&trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// Start moves a PLANNED trip to RUNNING and puts truck and driver on the road.
func (s *TripService) Start(id uint, userID int) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionTrip(trip.Status, models.TripRunning) {
		return nil, NewValidationError("trip %s cannot start from %s", trip.TripNumber, trip.Status)
	}

	now := time.Now()
	trip.ActualStart = &now
	trip.Status = models.TripRunning
	trip.UpdatedBy = userID

	if err := s.trips.Update(trip); err != nil {
		return nil, err
	}
	if err := s.trucks.UpdateStatus(trip.TruckID, models.TruckOnTrip); err != nil {
		return nil, err
	}
	if err := s.drivers.UpdateStatus(trip.DriverID, models.DriverOnTrip); err != nil {
		return nil, err
	}
	return trip, nil
}

type TripCompletionInput struct {
	FuelCost        float64 `json:"fuel_cost" validate:"gte=0"`
	TollCost        float64 `json:"toll_cost" validate:"gte=0"`
	DriverAllowance float64 `json:"driver_allowance" validate:"gte=0"`
	OtherExpense    float64 `json:"other_expense" validate:"gte=0"`
}

// Complete closes a RUNNING trip, releases the truck and driver, and books
// the freight as income against the truck.
func (s *TripService) Complete(id uint, input *TripCompletionInput, userID int) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionTrip(trip.Status, models.TripCompleted) {
		return nil, NewValidationError("trip %s cannot complete from %s", trip.TripNumber, trip.Status)
	}
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid completion data: %v", err)
	}

	now := time.Now()
	trip.ActualEnd = &now
	trip.FuelCost = utils.RoundMoney(input.FuelCost)
	trip.TollCost = utils.RoundMoney(input.TollCost)
	trip.DriverAllowance = utils.RoundMoney(input.DriverAllowance)
	trip.OtherExpense = utils.RoundMoney(input.OtherExpense)
	trip.Status = models.TripCompleted
	trip.UpdatedBy = userID

	if err := s.trips.Update(trip); err != nil {
		return nil, err
	}
	if err := s.trucks.UpdateStatus(trip.TruckID, models.TruckAvailable); err != nil {
		return nil, err
	}
	if err := s.drivers.UpdateStatus(trip.DriverID, models.DriverActive); err != nil {
		return nil, err
	}

	if trip.FreightAmount > 0 {
		maxID, err := s.incomes.MaxID()
		if err != nil {
			return nil, err
		}
		tripID := trip.ID
		income := models.Income{
			IncomeNumber: utils.SequentialCode("INC", maxID),
			TruckID:      trip.TruckID,
			TripID:       &tripID,
			Category:     models.IncomeFreight,
			Amount:       trip.FreightAmount,
			ReceivedDate: now,
			Payer:        trip.Client.ClientName,
			Notes:        fmt.Sprintf("Freight for trip %s", trip.TripNumber),
			CreatedBy:    userID,
		}
		if err := s.incomes.Create(&income); err != nil {
			return nil, err
		}
	}

	return trip, nil
}

// Cancel aborts a PLANNED or RUNNING trip and releases its resources.
func (s *TripService) Cancel(id uint, userID int) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionTrip(trip.Status, models.TripCancelled) {
		return nil, NewValidationError("trip %s cannot cancel from %s", trip.TripNumber, trip.Status)
	}

	wasRunning := trip.Status == models.TripRunning
	trip.Status = models.TripCancelled
	trip.UpdatedBy = userID

	if err := s.trips.Update(trip); err != nil {
		return nil, err
	}
	if wasRunning {
		if err := s.trucks.UpdateStatus(trip.TruckID, models.TruckAvailable); err != nil {
			return nil, err
		}
		if err := s.drivers.UpdateStatus(trip.DriverID, models.DriverActive); err != nil {
			return nil, err
		}
	}
	return trip, nil
}

// UpdateCosts adjusts running costs on an open trip.
func (s *TripService) UpdateCosts(id uint, input *TripCompletionInput, userID int) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip.Status == models.TripCompleted || trip.Status == models.TripCancelled {
		return nil, NewValidationError("trip %s is closed", trip.TripNumber)
	}
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid cost data: %v", err)
	}

	trip.FuelCost = utils.RoundMoney(input.FuelCost)
	trip.TollCost = utils.RoundMoney(input.TollCost)
	trip.DriverAllowance = utils.RoundMoney(input.DriverAllowance)
	trip.OtherExpense = utils.RoundMoney(input.OtherExpense)
	trip.UpdatedBy = userID

	if err := s.trips.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip that never ran. Started or completed trips stay on
// the books, as does anything a builty has been raised against.
func (s *TripService) Delete(id uint, userID int) error {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return err
	}
	if trip.Status != models.TripPlanned && trip.Status != models.TripCancelled {
		return NewValidationError("trip %s is %s and cannot be deleted", trip.TripNumber, trip.Status)
	}

	billed, err := s.builties.CountByTrip(id)
	if err != nil {
		return err
	}
	if billed > 0 {
		return NewValidationError("trip %s has %d builties raised against it", trip.TripNumber, billed)
	}

	trip.DeletedBy = userID
	if err := s.trips.Update(trip); err != nil {
		return err
	}
	return s.trips.Delete(id)
}

func (s *TripService) GetByID(id uint) (*models.Trip, error) {
	return s.trips.GetByID(id)
}

func (s *TripService) GetAll(f repositories.TripFilter, p *models.Pagination) ([]models.Trip, error) {
	return s.trips.GetAll(f, p)
}

// ProfitSummary is the per-trip P&L line. BalanceDue is what the client still
// owes on the freight after the booking advance.
type ProfitSummary struct {
	TripNumber      string  `json:"trip_number"`
	Freight         float64 `json:"freight"`
	AdvanceReceived float64 `json:"advance_received"`
	BalanceDue      float64 `json:"balance_due"`
	TotalExpense    float64 `json:"total_expense"`
	Profit          float64 `json:"profit"`
}

func (s *TripService) Profit(id uint) (*ProfitSummary, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &ProfitSummary{
		TripNumber:      trip.TripNumber,
		Freight:         trip.FreightAmount,
		AdvanceReceived: trip.AdvanceReceived,
		BalanceDue:      utils.RoundMoney(trip.FreightAmount - trip.AdvanceReceived),
		TotalExpense:    utils.RoundMoney(trip.TotalExpense()),
		Profit:          utils.RoundMoney(trip.Profit()),
	}, nil
}

func (s *TripService) CountByStatus() (map[string]int64, error) {
	return s.trips.CountByStatus()
}

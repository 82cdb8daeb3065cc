package services

import (
	"time"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/utils"
)

type MaintenanceService struct {
	jobs   *repositories.MaintenanceRepository
	trucks *repositories.TruckRepository
}

func NewMaintenanceService(jobs *repositories.MaintenanceRepository, trucks *repositories.TruckRepository) *MaintenanceService {
	return &MaintenanceService{jobs: jobs, trucks: trucks}
}

var serviceTypes = map[string]bool{
	models.ServiceOilChange:      true,
	models.ServiceTireRotation:   true,
	models.ServiceBrakeService:   true,
	models.ServiceBatteryService: true,
	models.ServiceGeneral:        true,
	models.ServiceRepair:         true,
	models.ServiceInspection:     true,
}

var priorities = map[string]bool{
	models.PriorityLow: true, models.PriorityMedium: true,
	models.PriorityHigh: true, models.PriorityCritical: true,
}

type MaintenanceInput struct {
	TruckID       uint    `json:"truck_id" validate:"required"`
	ServiceType   string  `json:"service_type" validate:"required"`
	Description   string  `json:"description"`
	ScheduledDate string  `json:"scheduled_date" validate:"required"`
	OdometerKm    float64 `json:"odometer_km" validate:"gte=0"`
	Workshop      string  `json:"workshop"`
	Technician    string  `json:"technician"`
	Priority      string  `json:"priority"`
	NextServiceKm float64 `json:"next_service_km" validate:"gte=0"`
}

// Schedule books a maintenance job for a truck that is still in the fleet.
func (s *MaintenanceService) Schedule(input *MaintenanceInput, userID int) (*models.Maintenance, error) {
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid maintenance data: %v", err)
	}
	if !serviceTypes[input.ServiceType] {
		return nil, NewValidationError("unknown service type %s", input.ServiceType)
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priorities[priority] {
		return nil, NewValidationError("unknown priority %s", input.Priority)
	}

	truck, err := s.trucks.GetByID(input.TruckID)
	if err != nil {
		return nil, err
	}
	if truck.Status == models.TruckRetired {
		return nil, NewValidationError("truck %s is retired", truck.TruckCode)
	}

	scheduled, err := utils.ParseDate(input.ScheduledDate)
	if err != nil {
		return nil, NewValidationError("scheduled_date: %v", err)
	}

	maxID, err := s.jobs.MaxID()
	if err != nil {
		return nil, err
	}

	job := models.Maintenance{
		JobNumber:     utils.SequentialCode("MNT", maxID),
		TruckID:       input.TruckID,
		ServiceType:   input.ServiceType,
		Description:   input.Description,
		ScheduledDate: scheduled,
		OdometerKm:    input.OdometerKm,
		Workshop:      input.Workshop,
		Technician:    input.Technician,
		Priority:      priority,
		NextServiceKm: input.NextServiceKm,
		Status:        models.MaintenanceScheduled,
		CreatedBy:     userID,
	}

	if err := s.jobs.Create(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Update reworks a job that has not entered the workshop yet. Rescheduling an
// OVERDUE job to a future date puts it back on the SCHEDULED track.
func (s *MaintenanceService) Update(id uint, input *MaintenanceInput, userID int) (*models.Maintenance, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.Status != models.MaintenanceScheduled && job.Status != models.MaintenanceOverdue {
		return nil, NewValidationError("job %s is %s and can no longer be edited", job.JobNumber, job.Status)
	}

	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid maintenance data: %v", err)
	}
	if !serviceTypes[input.ServiceType] {
		return nil, NewValidationError("unknown service type %s", input.ServiceType)
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priorities[priority] {
		return nil, NewValidationError("unknown priority %s", input.Priority)
	}

	truck, err := s.trucks.GetByID(input.TruckID)
	if err != nil {
		return nil, err
	}
	if truck.Status == models.TruckRetired {
		return nil, NewValidationError("truck %s is retired", truck.TruckCode)
	}

	scheduled, err := utils.ParseDate(input.ScheduledDate)
	if err != nil {
		return nil, NewValidationError("scheduled_date: %v", err)
	}

	job.TruckID = input.TruckID
	job.ServiceType = input.ServiceType
	job.Description = input.Description
	job.ScheduledDate = scheduled
	job.OdometerKm = input.OdometerKm
	job.Workshop = input.Workshop
	job.Technician = input.Technician
	job.Priority = priority
	job.NextServiceKm = input.NextServiceKm
	job.UpdatedBy = userID
	if job.Status == models.MaintenanceOverdue && scheduled.After(time.Now()) {
		job.Status = models.MaintenanceScheduled
	}

	if err := s.jobs.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Start pulls the truck into the workshop.
func (s *MaintenanceService) Start(id uint, userID int) (*models.Maintenance, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionMaintenance(job.Status, models.MaintenanceInProgress) {
		return nil, NewValidationError("job %s cannot start from %s", job.JobNumber, job.Status)
	}

	truck, err := s.trucks.GetByID(job.TruckID)
	if err != nil {
		return nil, err
	}
	if truck.Status == models.TruckOnTrip {
		return nil, NewValidationError("truck %s is on a trip", truck.TruckCode)
	}

	job.Status = models.MaintenanceInProgress
	job.UpdatedBy = userID
	if err := s.jobs.Update(job); err != nil {
		return nil, err
	}
	if err := s.trucks.UpdateStatus(job.TruckID, models.TruckInMaintenance); err != nil {
		return nil, err
	}
	return job, nil
}

type MaintenanceCompletionInput struct {
	LaborCost       float64 `json:"labor_cost" validate:"gte=0"`
	PartsCost       float64 `json:"parts_cost" validate:"gte=0"`
	NextServiceDate string  `json:"next_service_date"`
	NextServiceKm   float64 `json:"next_service_km" validate:"gte=0"`
}

// Complete closes the job, totals the costs and releases the truck. When the
// workshop gave no next service date, one is defaulted ninety days out.
func (s *MaintenanceService) Complete(id uint, input *MaintenanceCompletionInput, userID int) (*models.Maintenance, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionMaintenance(job.Status, models.MaintenanceCompleted) {
		return nil, NewValidationError("job %s cannot complete from %s", job.JobNumber, job.Status)
	}
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid completion data: %v", err)
	}

	now := time.Now()
	job.CompletedDate = &now
	job.LaborCost = utils.RoundMoney(input.LaborCost)
	job.PartsCost = utils.RoundMoney(input.PartsCost)
	job.TotalCost = utils.RoundMoney(input.LaborCost + input.PartsCost)
	job.Status = models.MaintenanceCompleted
	job.UpdatedBy = userID

	if input.NextServiceDate != "" {
		next, err := utils.ParseDate(input.NextServiceDate)
		if err != nil {
			return nil, NewValidationError("next_service_date: %v", err)
		}
		job.NextServiceDate = &next
	} else {
		next := now.AddDate(0, 0, 90)
		job.NextServiceDate = &next
	}
	if input.NextServiceKm > 0 {
		job.NextServiceKm = input.NextServiceKm
	}

	if err := s.jobs.Update(job); err != nil {
		return nil, err
	}
	if err := s.trucks.UpdateStatus(job.TruckID, models.TruckAvailable); err != nil {
		return nil, err
	}
	return job, nil
}

// Cancel drops the job and frees the truck if it was already in the workshop.
func (s *MaintenanceService) Cancel(id uint, userID int) (*models.Maintenance, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionMaintenance(job.Status, models.MaintenanceCancelled) {
		return nil, NewValidationError("job %s cannot cancel from %s", job.JobNumber, job.Status)
	}

	wasInProgress := job.Status == models.MaintenanceInProgress
	job.Status = models.MaintenanceCancelled
	job.UpdatedBy = userID

	if err := s.jobs.Update(job); err != nil {
		return nil, err
	}
	if wasInProgress {
		if err := s.trucks.UpdateStatus(job.TruckID, models.TruckAvailable); err != nil {
			return nil, err
		}
	}
	return job, nil
}

// OverdueSweep flags scheduled jobs that slipped past their date.
func (s *MaintenanceService) OverdueSweep(asOf time.Time) (int, error) {
	candidates, err := s.jobs.OverdueCandidates(asOf)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for i := range candidates {
		candidates[i].Status = models.MaintenanceOverdue
		if err := s.jobs.Update(&candidates[i]); err != nil {
			return flipped, err
		}
		flipped++
	}
	return flipped, nil
}

func (s *MaintenanceService) GetByID(id uint) (*models.Maintenance, error) {
	return s.jobs.GetByID(id)
}

func (s *MaintenanceService) GetAll(f repositories.MaintenanceFilter, p *models.Pagination) ([]models.Maintenance, error) {
	return s.jobs.GetAll(f, p)
}

func (s *MaintenanceService) Delete(id uint, userID int) error {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return err
	}
	if job.Status == models.MaintenanceInProgress {
		return NewValidationError("job %s is in progress", job.JobNumber)
	}

	job.DeletedBy = userID
	if err := s.jobs.Update(job); err != nil {
		return err
	}
	return s.jobs.Delete(id)
}

func (s *MaintenanceService) CostByTruck(truckID uint, from, to time.Time) (float64, error) {
	if _, err := s.trucks.GetByID(truckID); err != nil {
		return 0, err
	}
	return s.jobs.CostByTruck(truckID, from, to)
}

func (s *MaintenanceService) Upcoming(withinDays int) ([]models.Maintenance, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	now := time.Now()
	return s.jobs.Upcoming(now, now.AddDate(0, 0, withinDays))
}

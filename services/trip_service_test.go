package services

import (
	"testing"
	"time"

	"transport-app/models"
	"transport-app/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTripService(db *gorm.DB) *TripService {
	return NewTripService(
		repositories.NewTripRepository(db),
		repositories.NewTruckRepository(db),
		repositories.NewDriverRepository(db),
		repositories.NewClientRepository(db),
		repositories.NewIncomeRepository(db),
		repositories.NewBuiltyRepository(db),
	)
}

func planInput() TripInput {
	return TripInput{
		TruckID:       1,
		DriverID:      2,
		ClientID:      3,
		Origin:        "Nagpur",
		Destination:   "Pune",
		DistanceKm:    700,
		PlannedStart:  "2026-09-01",
		PlannedEnd:    "2026-09-04",
		FreightAmount: 45000,
	}
}

func TestTripServicePlanRejectsAdvanceOverFreight(t *testing.T) {
	db, _ := newMockDB(t)
	service := newTripService(db)

	input := planInput()
	input.AdvanceReceived = 50000

	_, err := service.Plan(&input, 1)
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
	assert.Contains(t, err.Error(), "exceeds freight")
}

func TestTripServicePlanRejectsBusyTruck(t *testing.T) {
	db, mock := newMockDB(t)
	service := newTripService(db)

	mock.ExpectQuery("SELECT \\* FROM `trucks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_code", "status"}).
			AddRow(1, "TRK-0001", models.TruckOnTrip))

	input := planInput()
	_, err := service.Plan(&input, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "truck TRK-0001 is ON_TRIP")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripServicePlanRejectsOverlappingBooking(t *testing.T) {
	db, mock := newMockDB(t)
	service := newTripService(db)

	mock.ExpectQuery("SELECT \\* FROM `trucks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_code", "status"}).
			AddRow(1, "TRK-0001", models.TruckAvailable))
	mock.ExpectQuery("SELECT \\* FROM `drivers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_code", "status", "license_expiry"}).
			AddRow(2, "DRV-0002", models.DriverActive, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT \\* FROM `clients`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_code", "status"}).
			AddRow(3, "CLT-0003", models.ClientActive))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `trips`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	input := planInput()
	_, err := service.Plan(&input, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "already booked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripServicePlanRejectsExpiringLicense(t *testing.T) {
	db, mock := newMockDB(t)
	service := newTripService(db)

	mock.ExpectQuery("SELECT \\* FROM `trucks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_code", "status"}).
			AddRow(1, "TRK-0001", models.TruckAvailable))
	mock.ExpectQuery("SELECT \\* FROM `drivers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_code", "status", "license_expiry"}).
			AddRow(2, "DRV-0002", models.DriverActive, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)))

	input := planInput()
	_, err := service.Plan(&input, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "license expires")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripServiceDeleteBlockedOnceRunning(t *testing.T) {
	db, mock := newMockDB(t)
	service := newTripService(db)

	mock.ExpectQuery("SELECT \\* FROM `trips`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_number", "truck_id", "driver_id", "client_id", "status"}).
			AddRow(7, "TRP-20260901-0007", 0, 0, 0, models.TripRunning))

	err := service.Delete(7, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "cannot be deleted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripServiceDeleteBlockedByRaisedBuilties(t *testing.T) {
	db, mock := newMockDB(t)
	service := newTripService(db)

	mock.ExpectQuery("SELECT \\* FROM `trips`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_number", "truck_id", "driver_id", "client_id", "status"}).
			AddRow(7, "TRP-20260901-0007", 0, 0, 0, models.TripPlanned))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `builties`").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	err := service.Delete(7, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "builties raised against")
	assert.NoError(t, mock.ExpectationsWereMet())
}

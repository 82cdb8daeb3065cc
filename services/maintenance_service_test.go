package services

import (
	"testing"
	"time"

	"transport-app/models"
	"transport-app/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMaintenanceService(db *gorm.DB) *MaintenanceService {
	return NewMaintenanceService(repositories.NewMaintenanceRepository(db), repositories.NewTruckRepository(db))
}

func maintenanceInput() MaintenanceInput {
	return MaintenanceInput{
		TruckID:       3,
		ServiceType:   models.ServiceRepair,
		Description:   "Gearbox overhaul",
		ScheduledDate: "2027-01-15",
	}
}

func TestMaintenanceServiceOverdueSweepFlagsLapsedJobs(t *testing.T) {
	db, mock := newMockDB(t)
	service := newMaintenanceService(db)

	lapsed := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `maintenances`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_number", "truck_id", "scheduled_date", "status"}).
			AddRow(1, "MNT-0001", 0, lapsed, models.MaintenanceScheduled).
			AddRow(2, "MNT-0002", 0, lapsed, models.MaintenanceScheduled))
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `maintenances`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	flipped, err := service.OverdueSweep(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, flipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceServiceOverdueSweepNoCandidates(t *testing.T) {
	db, mock := newMockDB(t)
	service := newMaintenanceService(db)

	mock.ExpectQuery("SELECT \\* FROM `maintenances`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_number", "truck_id", "scheduled_date", "status"}))

	flipped, err := service.OverdueSweep(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, flipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceServiceUpdateBlockedOnceInWorkshop(t *testing.T) {
	db, mock := newMockDB(t)
	service := newMaintenanceService(db)

	mock.ExpectQuery("SELECT \\* FROM `maintenances`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_number", "truck_id", "status"}).
			AddRow(4, "MNT-0004", 0, models.MaintenanceInProgress))

	input := maintenanceInput()
	_, err := service.Update(4, &input, 1)
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
	assert.Contains(t, err.Error(), "can no longer be edited")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceServiceUpdateReschedulesOverdueJob(t *testing.T) {
	db, mock := newMockDB(t)
	service := newMaintenanceService(db)

	mock.ExpectQuery("SELECT \\* FROM `maintenances`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_number", "truck_id", "status"}).
			AddRow(4, "MNT-0004", 3, models.MaintenanceOverdue))
	mock.ExpectQuery("SELECT \\* FROM `trucks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_code", "status"}).
			AddRow(3, "TRK-0003", models.TruckAvailable))
	mock.ExpectQuery("SELECT \\* FROM `trucks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_code", "status"}).
			AddRow(3, "TRK-0003", models.TruckAvailable))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `maintenances`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	input := maintenanceInput()
	job, err := service.Update(4, &input, 2)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceScheduled, job.Status)
	assert.Equal(t, models.ServiceRepair, job.ServiceType)
	assert.Equal(t, 2, job.UpdatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

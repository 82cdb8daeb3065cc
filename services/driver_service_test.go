package services

import (
	"testing"

	"transport-app/models"
	"transport-app/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestDriverServiceCreateRejectsBadInput(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewDriverService(repositories.NewDriverRepository(db))

	tests := []struct {
		name  string
		input DriverInput
	}{
		{"missing name", DriverInput{Phone: "9876543210", LicenseNumber: "MH0420210001", LicenseExpiry: "2027-01-01"}},
		{"short license", DriverInput{Name: "Ram Kumar", Phone: "9876543210", LicenseNumber: "MH", LicenseExpiry: "2027-01-01"}},
		{"negative salary", DriverInput{Name: "Ram Kumar", Phone: "9876543210", LicenseNumber: "MH0420210001", LicenseExpiry: "2027-01-01", MonthlySalary: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(&tt.input, 1)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestDriverServiceCreateRejectsDuplicateLicense(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDriverService(repositories.NewDriverRepository(db))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `drivers`").
		WithArgs("MH0420210001", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	input := DriverInput{
		Name:          "Ram Kumar",
		Phone:         "9876543210",
		LicenseNumber: "mh0420210001",
		LicenseExpiry: "2027-01-01",
		MonthlySalary: 18000,
	}

	_, err := service.Create(&input, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverServiceCreate(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDriverService(repositories.NewDriverRepository(db))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `drivers`").
		WithArgs("MH0420210001", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE\\(MAX\\(id\\), 0\\) FROM `drivers`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(6))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `drivers`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	input := DriverInput{
		Name:          "Ram Kumar",
		Phone:         "9876543210",
		LicenseNumber: "mh0420210001",
		LicenseExpiry: "2027-01-01",
		MonthlySalary: 18000,
	}

	driver, err := service.Create(&input, 1)
	require.NoError(t, err)
	assert.Equal(t, "DRV-0007", driver.DriverCode)
	assert.Equal(t, "MH0420210001", driver.LicenseNumber)
	assert.Equal(t, models.DriverActive, driver.Status)
	assert.Equal(t, 1, driver.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package services

import (
	"testing"

	"transport-app/models"
	"transport-app/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBuiltyService(db *gorm.DB) *BuiltyService {
	clientRepo := repositories.NewClientRepository(db)
	builtyRepo := repositories.NewBuiltyRepository(db)
	return NewBuiltyService(builtyRepo, repositories.NewTripRepository(db), NewClientService(clientRepo, builtyRepo))
}

func builtyRow(id int, grandTotal, paidAmount float64, paymentStatus string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "builty_no", "trip_id", "client_id", "grand_total", "paid_amount", "payment_status"}).
		AddRow(id, 73516298240, 0, 0, grandTotal, paidAmount, paymentStatus)
}

func TestBuiltyServiceRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	db, _ := newMockDB(t)
	service := newBuiltyService(db)

	for _, amount := range []float64{0, -250} {
		_, err := service.RecordPayment(1, amount, 1)
		assert.True(t, IsValidationError(err), "amount %v: expected validation error, got %v", amount, err)
		assert.Contains(t, err.Error(), "must be positive")
	}
}

func TestBuiltyServiceRecordPaymentRejectsOverpayment(t *testing.T) {
	db, mock := newMockDB(t)
	service := newBuiltyService(db)

	mock.ExpectQuery("SELECT \\* FROM `builties`").
		WillReturnRows(builtyRow(5, 1000, 400, models.PaymentPartial))

	_, err := service.RecordPayment(5, 700, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "payment 700.00 exceeds balance 600.00")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuiltyServiceRecordPaymentRejectsSettledBuilty(t *testing.T) {
	db, mock := newMockDB(t)
	service := newBuiltyService(db)

	mock.ExpectQuery("SELECT \\* FROM `builties`").
		WillReturnRows(builtyRow(5, 1000, 1000, models.PaymentPaid))

	_, err := service.RecordPayment(5, 100, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "already settled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuiltyServiceRecordPaymentSettlesAtExactBalance(t *testing.T) {
	db, mock := newMockDB(t)
	service := newBuiltyService(db)

	mock.ExpectQuery("SELECT \\* FROM `builties`").
		WillReturnRows(builtyRow(5, 1000, 400, models.PaymentPartial))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `builties`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	builty, err := service.RecordPayment(5, 600, 2)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, builty.PaidAmount)
	assert.Equal(t, models.PaymentPaid, builty.PaymentStatus)
	assert.Equal(t, 2, builty.UpdatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuiltyServiceRecordPaymentLeavesShortPaymentPartial(t *testing.T) {
	db, mock := newMockDB(t)
	service := newBuiltyService(db)

	mock.ExpectQuery("SELECT \\* FROM `builties`").
		WillReturnRows(builtyRow(5, 1000, 0, models.PaymentPending))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `builties`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	builty, err := service.RecordPayment(5, 250, 1)
	require.NoError(t, err)
	assert.Equal(t, 250.0, builty.PaidAmount)
	assert.Equal(t, models.PaymentPartial, builty.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuiltyServiceDeleteBlockedOncePaid(t *testing.T) {
	db, mock := newMockDB(t)
	service := newBuiltyService(db)

	mock.ExpectQuery("SELECT \\* FROM `builties`").
		WillReturnRows(builtyRow(5, 1000, 100, models.PaymentPartial))

	err := service.Delete(5, 1)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "cannot be deleted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

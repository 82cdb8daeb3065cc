package services

import (
	"testing"

	"transport-app/models"
	"transport-app/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newClientService(db *gorm.DB) *ClientService {
	return NewClientService(repositories.NewClientRepository(db), repositories.NewBuiltyRepository(db))
}

func TestClientServiceCheckCreditZeroLimitIsUnlimited(t *testing.T) {
	db, mock := newMockDB(t)
	service := newClientService(db)

	client := &models.Client{ClientCode: "CLT-0001", CreditLimit: 0}
	assert.NoError(t, service.CheckCredit(client, 5000000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientServiceCheckCreditWithinLimit(t *testing.T) {
	db, mock := newMockDB(t)
	service := newClientService(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(grand_total - paid_amount\\), 0\\) FROM `builties`").
		WithArgs(7, models.PaymentPaid).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(500.0))

	client := &models.Client{ClientCode: "CLT-0007", CreditLimit: 2000}
	client.ID = 7
	assert.NoError(t, service.CheckCredit(client, 1000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientServiceCheckCreditRejectsBreach(t *testing.T) {
	db, mock := newMockDB(t)
	service := newClientService(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(grand_total - paid_amount\\), 0\\) FROM `builties`").
		WithArgs(7, models.PaymentPaid).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1500.0))

	client := &models.Client{ClientCode: "CLT-0007", CreditLimit: 2000}
	client.ID = 7
	err := service.CheckCredit(client, 1000)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "credit limit exceeded for CLT-0007")
	assert.NoError(t, mock.ExpectationsWereMet())
}

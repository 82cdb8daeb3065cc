package repositories

import (
	"testing"

	"transport-app/models"

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

func TestClientRepositoryCountByGSTIN(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clients`").
		WithArgs("27AAPFU0939F1ZV", 7).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	count, err := repo.CountByGSTIN("27AAPFU0939F1ZV", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryMaxID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("SELECT COALESCE\\(MAX\\(id\\), 0\\) FROM `clients`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(41))

	max, err := repo.MaxID()
	assert.NoError(t, err)
	assert.Equal(t, int64(41), max)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryGetAllPaginates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clients`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(45))
	mock.ExpectQuery("SELECT \\* FROM `clients`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_code", "client_name"}).
			AddRow(1, "CLT-0001", "Sharma Traders").
			AddRow(2, "CLT-0002", "Verma Logistics"))

	p := &models.Pagination{Page: 2, Limit: 20}
	clients, err := repo.GetAll("", "", p)
	assert.NoError(t, err)
	assert.Len(t, clients, 2)
	assert.Equal(t, int64(45), p.TotalRows)
	assert.Equal(t, 3, p.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

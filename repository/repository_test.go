package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"sandwich-service/models"
	"sandwich-service/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

var customerColumns = []string{"id", "name", "email", "phone_number", "address"}

func TestCustomerCreate_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	customer := &models.Customer{
		Name:        "John Doe",
		Email:       "johndoe@example.com",
		PhoneNumber: "1234567890",
		Address:     "123 Elm Street",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), customer)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreate_UniqueViolationRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "customers"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_customers_email"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Customer{Name: "Jane", Email: "dup@example.com"})

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "uq_customers_email", pgErr.ConstraintName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerFindByID_Found(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(7, "John Doe", "johndoe@example.com", "1234567890", "123 Elm Street"))
	mock.ExpectCommit()

	c, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "johndoe@example.com", c.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns))
	mock.ExpectRollback()

	c, err := repo.FindByID(context.Background(), 99)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerFindAll(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(1, "A", "a@example.com", "", "").
			AddRow(2, "B", "b@example.com", "", ""))
	mock.ExpectCommit()

	rows, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdate_AppliesChanges(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(3, "Old", "old@example.com", "111", "Old Street"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "customers" SET "name"=`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(3, "New", "old@example.com", "111", "Old Street"))
	mock.ExpectCommit()

	c, err := repo.Update(context.Background(), 3, map[string]interface{}{"name": "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", c.Name)
	assert.Equal(t, "old@example.com", c.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdate_EmptyChangesSkipsUpdate(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	row := []driver.Value{3, "Same", "same@example.com", "111", "Street"}
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).AddRow(row...))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).AddRow(row...))
	mock.ExpectCommit()

	c, err := repo.Update(context.Background(), 3, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Same", c.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDelete_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns).AddRow(4, "Gone", "gone@example.com", "", ""))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "customers"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDelete_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows(customerColumns))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentTotal(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormPaymentRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM "payments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(25.50))
	mock.ExpectCommit()

	total, err := repo.Total(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 25.50, total, 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentTotal_NoPayments(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormPaymentRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM "payments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectCommit()

	total, err := repo.Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

var orderColumns = []string{"id", "customer_id", "customer_name", "order_date", "tracking_number", "order_status", "status", "total_price", "description"}

func TestOrderFindAllSortedByDate_FiltersAndSorts(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	minDate := time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC)
	newer := minDate.Add(48 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE order_date >= $1 ORDER BY order_date DESC`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(2, 1, "John", newer, "TRK2", "", "pending", 12.5, "").
			AddRow(1, 1, "John", minDate, "TRK1", "", "pending", 8.0, ""))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_details"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "sandwich_id", "amount"}).
			AddRow(10, 2, 5, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_promotions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "promotion_id"}))
	mock.ExpectCommit()

	orders, err := repo.FindAllSortedByDate(context.Background(), &minDate)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Len(t, orders[0].OrderDetails, 1)
	assert.Empty(t, orders[1].OrderDetails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindAllSortedByDate_NoFilter(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY order_date DESC`)).
		WillReturnRows(sqlmock.NewRows(orderColumns))
	mock.ExpectCommit()

	orders, err := repo.FindAllSortedByDate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreate_UnknownPromotion(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "promotions" WHERE id IN`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "promotion_code", "expiration_date"}).
			AddRow(1, "SAVE10", time.Now().Add(24*time.Hour)))
	mock.ExpectRollback()

	order := &models.Order{CustomerID: 1, CustomerName: "John", Status: models.DefaultOrderStatus, OrderDate: time.Now()}
	err := repo.Create(context.Background(), order, []uint{1, 2, 2})
	assert.ErrorIs(t, err, repository.ErrPromotionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentRepo struct {
	total    float64
	totalErr error
	createFn func(ctx context.Context, p *models.Payment) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return m.createFn(ctx, p)
}
func (m *mockPaymentRepo) FindAll(context.Context) ([]models.Payment, error) { return nil, nil }
func (m *mockPaymentRepo) FindByID(context.Context, uint) (*models.Payment, error) {
	return nil, nil
}
func (m *mockPaymentRepo) Update(context.Context, uint, map[string]interface{}) (*models.Payment, error) {
	return nil, nil
}
func (m *mockPaymentRepo) Delete(context.Context, uint) error { return nil }
func (m *mockPaymentRepo) Total(context.Context) (float64, error) {
	return m.total, m.totalErr
}

func TestPaymentService_TotalRoundsToCents(t *testing.T) {
	svc := services.NewPaymentService(&mockPaymentRepo{total: 10.00 + 15.50 + 0.001}, nil, testLogger())

	total, svcErr := svc.GetTotalPayments(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, 25.50, total.Total)
}

func TestPaymentService_TotalEmpty(t *testing.T) {
	svc := services.NewPaymentService(&mockPaymentRepo{}, nil, testLogger())

	total, svcErr := svc.GetTotalPayments(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, 0.0, total.Total)
}

func TestPaymentService_TotalFailure(t *testing.T) {
	svc := services.NewPaymentService(&mockPaymentRepo{totalErr: errors.New("conn reset")}, nil, testLogger())

	_, svcErr := svc.GetTotalPayments(context.Background())
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Failed to total payment", svcErr.Message)
}

func TestPaymentService_CreateForMissingOrder(t *testing.T) {
	repo := &mockPaymentRepo{
		createFn: func(context.Context, *models.Payment) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_payments_order"}
		},
	}
	svc := services.NewPaymentService(repo, nil, testLogger())

	_, svcErr := svc.CreatePayment(context.Background(), &models.CreatePaymentRequest{OrderID: 99, CardInformation: "4111", TransactionStatus: "ok", PaymentType: "card"})
	require.NotNil(t, svcErr)
	assert.Equal(t, "Referenced record does not exist", svcErr.Message)
}

func TestPaymentService_SecondPaymentForOrder(t *testing.T) {
	repo := &mockPaymentRepo{
		createFn: func(context.Context, *models.Payment) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payments_order"}
		},
	}
	svc := services.NewPaymentService(repo, nil, testLogger())

	_, svcErr := svc.CreatePayment(context.Background(), &models.CreatePaymentRequest{OrderID: 1, CardInformation: "4111", TransactionStatus: "ok", PaymentType: "card"})
	require.NotNil(t, svcErr)
	assert.Equal(t, "Payment already exists", svcErr.Message)
}

package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"sandwich-service/controllers"
	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentService struct {
	createFn func(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *services.ServiceError)
	totalFn  func(ctx context.Context) (*models.PaymentTotal, *services.ServiceError)
}

func (m *mockPaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockPaymentService) ListPayments(context.Context) ([]models.Payment, *services.ServiceError) {
	return []models.Payment{}, nil
}
func (m *mockPaymentService) GetPayment(context.Context, uint) (*models.Payment, *services.ServiceError) {
	return nil, &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
}
func (m *mockPaymentService) UpdatePayment(context.Context, uint, *models.PaymentPatch) (*models.Payment, *services.ServiceError) {
	return nil, &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
}
func (m *mockPaymentService) DeletePayment(context.Context, uint) *services.ServiceError {
	return &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
}
func (m *mockPaymentService) GetTotalPayments(ctx context.Context) (*models.PaymentTotal, *services.ServiceError) {
	return m.totalFn(ctx)
}

func setupPaymentRouter(svc services.PaymentService) *gin.Engine {
	r := gin.New()
	pc := controllers.NewPaymentController(svc)
	r.POST("/payments/", pc.CreatePayment)
	r.GET("/payments/total", pc.GetTotalPayments)
	r.GET("/payments/:id", pc.GetPayment)
	r.DELETE("/payments/:id", pc.DeletePayment)
	return r
}

func TestPaymentController_Total(t *testing.T) {
	svc := &mockPaymentService{
		totalFn: func(context.Context) (*models.PaymentTotal, *services.ServiceError) {
			return &models.PaymentTotal{Total: 25.5}, nil
		},
	}

	w := doJSON(setupPaymentRouter(svc), http.MethodGet, "/payments/total", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":25.5}`, w.Body.String())
}

func TestPaymentController_TotalFailure(t *testing.T) {
	svc := &mockPaymentService{
		totalFn: func(context.Context) (*models.PaymentTotal, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: http.StatusBadRequest, Message: "Failed to total payment"}
		},
	}

	w := doJSON(setupPaymentRouter(svc), http.MethodGet, "/payments/total", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to total payment", errorMessage(t, w))
}

func TestPaymentController_CreateRejectsNegativeAmount(t *testing.T) {
	w := doJSON(setupPaymentRouter(&mockPaymentService{}), http.MethodPost, "/payments/",
		`{"order_id":1,"card_information":"4111","transaction_status":"ok","payment_type":"card","amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request", errorMessage(t, w))
}

func TestPaymentController_Create(t *testing.T) {
	svc := &mockPaymentService{
		createFn: func(_ context.Context, req *models.CreatePaymentRequest) (*models.Payment, *services.ServiceError) {
			return &models.Payment{ID: 1, OrderID: req.OrderID, Amount: req.Amount}, nil
		},
	}

	w := doJSON(setupPaymentRouter(svc), http.MethodPost, "/payments/",
		`{"order_id":1,"card_information":"4111","transaction_status":"ok","payment_type":"card","amount":10}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPaymentController_DeleteMissing(t *testing.T) {
	w := doJSON(setupPaymentRouter(&mockPaymentService{}), http.MethodDelete, "/payments/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Payment not found", errorMessage(t, w))
}

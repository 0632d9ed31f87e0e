package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"sandwich-service/controllers"
	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock OrderService ---

type mockOrderService struct {
	createFn func(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *services.ServiceError)
	byDateFn func(ctx context.Context, minDate *time.Time) ([]models.Order, *services.ServiceError)
	updateFn func(ctx context.Context, id uint, patch *models.OrderPatch) (*models.Order, *services.ServiceError)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockOrderService) ListOrders(context.Context) ([]models.Order, *services.ServiceError) {
	return []models.Order{}, nil
}
func (m *mockOrderService) ListOrdersByDate(ctx context.Context, minDate *time.Time) ([]models.Order, *services.ServiceError) {
	return m.byDateFn(ctx, minDate)
}
func (m *mockOrderService) GetOrder(context.Context, uint) (*models.Order, *services.ServiceError) {
	return nil, &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
}
func (m *mockOrderService) UpdateOrder(ctx context.Context, id uint, patch *models.OrderPatch) (*models.Order, *services.ServiceError) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockOrderService) DeleteOrder(context.Context, uint) *services.ServiceError {
	return nil
}

func setupOrderRouter(svc services.OrderService) *gin.Engine {
	r := gin.New()
	oc := controllers.NewOrderController(svc)
	r.POST("/orders/", oc.CreateOrder)
	r.GET("/orders/by-date", oc.ListOrdersByDate)
	r.GET("/orders/:id", oc.GetOrder)
	r.PUT("/orders/:id", oc.UpdateOrder)
	r.DELETE("/orders/:id", oc.DeleteOrder)
	return r
}

func TestOrderController_ListByDate(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *time.Time
	}{
		{"no filter", "", nil},
		{"plain date", "?min_date=2024-11-16", ptrTime(time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC))},
		{"rfc3339", "?min_date=2024-11-16T10:00:00Z", ptrTime(time.Date(2024, 11, 16, 10, 0, 0, 0, time.UTC))},
		{"encoded offset", "?min_date=2024-11-16T10:00:00%2B02:00", ptrTime(time.Date(2024, 11, 16, 8, 0, 0, 0, time.UTC))},
		{"unencoded offset", "?min_date=2024-11-16T10:00:00+02:00", ptrTime(time.Date(2024, 11, 16, 8, 0, 0, 0, time.UTC))},
		{"negative offset", "?min_date=2024-11-16T10:00:00-05:00", ptrTime(time.Date(2024, 11, 16, 15, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *time.Time
			called := false
			svc := &mockOrderService{
				byDateFn: func(_ context.Context, minDate *time.Time) ([]models.Order, *services.ServiceError) {
					called = true
					got = minDate
					return []models.Order{{ID: 2}, {ID: 1}}, nil
				},
			}

			w := doJSON(setupOrderRouter(svc), http.MethodGet, "/orders/by-date"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.True(t, called)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.True(t, tt.want.Equal(*got), "got %v", got)
			}

			var orders []models.Order
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
			assert.Len(t, orders, 2)
		})
	}
}

func TestOrderController_ListByDate_BadDate(t *testing.T) {
	svc := &mockOrderService{}

	w := doJSON(setupOrderRouter(svc), http.MethodGet, "/orders/by-date?min_date=16/11/2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid min_date", errorMessage(t, w))
}

func TestOrderController_CreatePassesPromotions(t *testing.T) {
	var got *models.CreateOrderRequest
	svc := &mockOrderService{
		createFn: func(_ context.Context, req *models.CreateOrderRequest) (*models.Order, *services.ServiceError) {
			got = req
			return &models.Order{ID: 1, CustomerID: req.CustomerID, Status: models.DefaultOrderStatus}, nil
		},
	}

	w := doJSON(setupOrderRouter(svc), http.MethodPost, "/orders/",
		`{"customer_id":3,"customer_name":"John Doe","total_price":12.5,"promotion_ids":[1,2]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, []uint{1, 2}, got.PromotionIDs)
	assert.Equal(t, 12.5, got.TotalPrice)
}

func TestOrderController_StatusLength(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, req *models.CreateOrderRequest) (*models.Order, *services.ServiceError) {
			return &models.Order{ID: 1, CustomerID: req.CustomerID, Status: req.Status}, nil
		},
	}
	r := setupOrderRouter(svc)
	body := func(status string) string {
		return `{"customer_id":3,"customer_name":"John Doe","status":"` + status + `"}`
	}

	w := doJSON(r, http.MethodPost, "/orders/", body(strings.Repeat("s", 50)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/orders/", body(strings.Repeat("s", 51)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request", errorMessage(t, w))
}

func TestOrderController_CreateMissingCustomer(t *testing.T) {
	w := doJSON(setupOrderRouter(&mockOrderService{}), http.MethodPost, "/orders/", `{"customer_name":"John Doe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_UpdateDistinguishesAbsentPromotions(t *testing.T) {
	var patches []*models.OrderPatch
	svc := &mockOrderService{
		updateFn: func(_ context.Context, id uint, patch *models.OrderPatch) (*models.Order, *services.ServiceError) {
			patches = append(patches, patch)
			return &models.Order{ID: id}, nil
		},
	}
	r := setupOrderRouter(svc)

	require.Equal(t, http.StatusOK, doJSON(r, http.MethodPut, "/orders/4", `{"status":"done"}`).Code)
	require.Equal(t, http.StatusOK, doJSON(r, http.MethodPut, "/orders/4", `{"promotion_ids":[]}`).Code)

	require.Len(t, patches, 2)
	assert.Nil(t, patches[0].PromotionIDs)
	require.NotNil(t, patches[1].PromotionIDs)
	assert.Empty(t, *patches[1].PromotionIDs)
}

func TestOrderController_DeleteReturnsNoContent(t *testing.T) {
	w := doJSON(setupOrderRouter(&mockOrderService{}), http.MethodDelete, "/orders/9", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func ptrTime(t time.Time) *time.Time { return &t }

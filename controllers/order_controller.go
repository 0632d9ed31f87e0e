package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /orders.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	order, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /orders.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id.
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "order")
	if !ok {
		return
	}

	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/:id. Only the fields present in the
// body are changed. A promotion_ids list replaces the order's promotions.
func (oc *OrderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "order")
	if !ok {
		return
	}
	var patch models.OrderPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	order, svcErr := oc.orderService.UpdateOrder(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id.
func (oc *OrderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "order")
	if !ok {
		return
	}

	if svcErr := oc.orderService.DeleteOrder(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListOrdersByDate handles GET /orders/by-date. Orders come back newest first;
// min_date, when given, drops orders placed before it.
func (oc *OrderController) ListOrdersByDate(ctx *gin.Context) {
	var minDate *time.Time
	if raw := ctx.Query("min_date"); raw != "" {
		parsed, err := parseMinDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_date", "details": err.Error()})
			return
		}
		minDate = &parsed
	}

	orders, svcErr := oc.orderService.ListOrdersByDate(ctx.Request.Context(), minDate)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// parseMinDate accepts RFC 3339 or a bare YYYY-MM-DD, read as midnight UTC.
// A "+hh:mm" offset sent without percent-encoding reaches us as " hh:mm"
// after query decoding, so a single space is read back as '+'.
func parseMinDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if strings.Count(raw, " ") == 1 {
		if t, err := time.Parse(time.RFC3339, strings.Replace(raw, " ", "+", 1)); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD, got %q", raw)
	}
	return t, nil
}

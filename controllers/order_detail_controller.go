package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// OrderDetailController handles HTTP requests for order lines.
type OrderDetailController struct {
	orderDetailService services.OrderDetailService
}

// NewOrderDetailController creates a new OrderDetailController.
func NewOrderDetailController(orderDetailService services.OrderDetailService) *OrderDetailController {
	return &OrderDetailController{orderDetailService: orderDetailService}
}

// CreateOrderDetail handles POST /order_details.
func (odc *OrderDetailController) CreateOrderDetail(ctx *gin.Context) {
	var req models.CreateOrderDetailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	orderDetail, svcErr := odc.orderDetailService.CreateOrderDetail(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, orderDetail)
}

// ListOrderDetails handles GET /order_details.
func (odc *OrderDetailController) ListOrderDetails(ctx *gin.Context) {
	orderDetails, svcErr := odc.orderDetailService.ListOrderDetails(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, orderDetails)
}

// GetOrderDetail handles GET /order_details/:id.
func (odc *OrderDetailController) GetOrderDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, "order detail")
	if !ok {
		return
	}

	orderDetail, svcErr := odc.orderDetailService.GetOrderDetail(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, orderDetail)
}

// UpdateOrderDetail handles PUT /order_details/:id.
func (odc *OrderDetailController) UpdateOrderDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, "order detail")
	if !ok {
		return
	}
	var patch models.OrderDetailPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	orderDetail, svcErr := odc.orderDetailService.UpdateOrderDetail(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, orderDetail)
}

// DeleteOrderDetail handles DELETE /order_details/:id.
func (odc *OrderDetailController) DeleteOrderDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, "order detail")
	if !ok {
		return
	}

	if svcErr := odc.orderDetailService.DeleteOrderDetail(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

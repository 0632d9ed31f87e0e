package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// PaymentController handles HTTP requests for payments.
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePayment handles POST /payments.
func (pc *PaymentController) CreatePayment(ctx *gin.Context) {
	var req models.CreatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payment, svcErr := pc.paymentService.CreatePayment(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /payments.
func (pc *PaymentController) ListPayments(ctx *gin.Context) {
	payments, svcErr := pc.paymentService.ListPayments(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// GetPayment handles GET /payments/:id.
func (pc *PaymentController) GetPayment(ctx *gin.Context) {
	id, ok := parseID(ctx, "payment")
	if !ok {
		return
	}

	payment, svcErr := pc.paymentService.GetPayment(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// UpdatePayment handles PUT /payments/:id.
func (pc *PaymentController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseID(ctx, "payment")
	if !ok {
		return
	}
	var patch models.PaymentPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	payment, svcErr := pc.paymentService.UpdatePayment(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// DeletePayment handles DELETE /payments/:id.
func (pc *PaymentController) DeletePayment(ctx *gin.Context) {
	id, ok := parseID(ctx, "payment")
	if !ok {
		return
	}

	if svcErr := pc.paymentService.DeletePayment(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetTotalPayments handles GET /payments/total.
func (pc *PaymentController) GetTotalPayments(ctx *gin.Context) {
	total, svcErr := pc.paymentService.GetTotalPayments(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, total)
}

package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests for customers.
type CustomerController struct {
	customerService services.CustomerService
}

// NewCustomerController creates a new CustomerController.
func NewCustomerController(customerService services.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// CreateCustomer handles POST /customers.
func (cc *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req models.CreateCustomerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	customer, svcErr := cc.customerService.CreateCustomer(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// ListCustomers handles GET /customers.
func (cc *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, svcErr := cc.customerService.ListCustomers(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:id.
func (cc *CustomerController) GetCustomer(ctx *gin.Context) {
	id, ok := parseID(ctx, "customer")
	if !ok {
		return
	}

	customer, svcErr := cc.customerService.GetCustomer(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /customers/:id. Only the fields present in the
// body are changed.
func (cc *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := parseID(ctx, "customer")
	if !ok {
		return
	}
	var patch models.CustomerPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	customer, svcErr := cc.customerService.UpdateCustomer(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id.
func (cc *CustomerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := parseID(ctx, "customer")
	if !ok {
		return
	}

	if svcErr := cc.customerService.DeleteCustomer(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

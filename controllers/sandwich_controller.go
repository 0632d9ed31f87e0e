package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// SandwichController handles HTTP requests for menu sandwiches.
type SandwichController struct {
	sandwichService services.SandwichService
}

// NewSandwichController creates a new SandwichController.
func NewSandwichController(sandwichService services.SandwichService) *SandwichController {
	return &SandwichController{sandwichService: sandwichService}
}

// CreateSandwich handles POST /sandwiches.
func (sc *SandwichController) CreateSandwich(ctx *gin.Context) {
	var req models.CreateSandwichRequest
	if !bindJSON(ctx, &req) {
		return
	}

	sandwich, svcErr := sc.sandwichService.CreateSandwich(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, sandwich)
}

// ListSandwiches handles GET /sandwiches.
func (sc *SandwichController) ListSandwiches(ctx *gin.Context) {
	sandwichs, svcErr := sc.sandwichService.ListSandwiches(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, sandwichs)
}

// GetSandwich handles GET /sandwiches/:id.
func (sc *SandwichController) GetSandwich(ctx *gin.Context) {
	id, ok := parseID(ctx, "sandwich")
	if !ok {
		return
	}

	sandwich, svcErr := sc.sandwichService.GetSandwich(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, sandwich)
}

// UpdateSandwich handles PUT /sandwiches/:id.
func (sc *SandwichController) UpdateSandwich(ctx *gin.Context) {
	id, ok := parseID(ctx, "sandwich")
	if !ok {
		return
	}
	var patch models.SandwichPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	sandwich, svcErr := sc.sandwichService.UpdateSandwich(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, sandwich)
}

// DeleteSandwich handles DELETE /sandwiches/:id.
func (sc *SandwichController) DeleteSandwich(ctx *gin.Context) {
	id, ok := parseID(ctx, "sandwich")
	if !ok {
		return
	}

	if svcErr := sc.sandwichService.DeleteSandwich(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// ResourceController handles HTTP requests for inventory resources.
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController.
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// CreateResource handles POST /resources.
func (rc *ResourceController) CreateResource(ctx *gin.Context) {
	var req models.CreateResourceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resource, svcErr := rc.resourceService.CreateResource(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, resource)
}

// ListResources handles GET /resources.
func (rc *ResourceController) ListResources(ctx *gin.Context) {
	resources, svcErr := rc.resourceService.ListResources(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, resources)
}

// GetResource handles GET /resources/:id.
func (rc *ResourceController) GetResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "resource")
	if !ok {
		return
	}

	resource, svcErr := rc.resourceService.GetResource(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// UpdateResource handles PUT /resources/:id.
func (rc *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "resource")
	if !ok {
		return
	}
	var patch models.ResourcePatch
	if !bindJSON(ctx, &patch) {
		return
	}

	resource, svcErr := rc.resourceService.UpdateResource(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// DeleteResource handles DELETE /resources/:id.
func (rc *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "resource")
	if !ok {
		return
	}

	if svcErr := rc.resourceService.DeleteResource(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// PromotionController handles HTTP requests for promotions.
type PromotionController struct {
	promotionService services.PromotionService
}

// NewPromotionController creates a new PromotionController.
func NewPromotionController(promotionService services.PromotionService) *PromotionController {
	return &PromotionController{promotionService: promotionService}
}

// CreatePromotion handles POST /promotions.
func (pc *PromotionController) CreatePromotion(ctx *gin.Context) {
	var req models.CreatePromotionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	promotion, svcErr := pc.promotionService.CreatePromotion(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, promotion)
}

// ListPromotions handles GET /promotions.
func (pc *PromotionController) ListPromotions(ctx *gin.Context) {
	promotions, svcErr := pc.promotionService.ListPromotions(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, promotions)
}

// GetPromotion handles GET /promotions/:id.
func (pc *PromotionController) GetPromotion(ctx *gin.Context) {
	id, ok := parseID(ctx, "promotion")
	if !ok {
		return
	}

	promotion, svcErr := pc.promotionService.GetPromotion(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, promotion)
}

// UpdatePromotion handles PUT /promotions/:id.
func (pc *PromotionController) UpdatePromotion(ctx *gin.Context) {
	id, ok := parseID(ctx, "promotion")
	if !ok {
		return
	}
	var patch models.PromotionPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	promotion, svcErr := pc.promotionService.UpdatePromotion(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, promotion)
}

// DeletePromotion handles DELETE /promotions/:id.
func (pc *PromotionController) DeletePromotion(ctx *gin.Context) {
	id, ok := parseID(ctx, "promotion")
	if !ok {
		return
	}

	if svcErr := pc.promotionService.DeletePromotion(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// ReviewController handles HTTP requests for reviews.
type ReviewController struct {
	reviewService services.ReviewService
}

func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateReview handles POST /reviews.
func (rc *ReviewController) CreateReview(ctx *gin.Context) {
	var req models.CreateReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	review, svcErr := rc.reviewService.CreateReview(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) ListReviews(ctx *gin.Context) {
	reviews, svcErr := rc.reviewService.ListReviews(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// GetReview handles GET /reviews/:id.
func (rc *ReviewController) GetReview(ctx *gin.Context) {
	id, ok := parseID(ctx, "review")
	if !ok {
		return
	}

	review, svcErr := rc.reviewService.GetReview(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// UpdateReview handles PUT /reviews/:id.
func (rc *ReviewController) UpdateReview(ctx *gin.Context) {
	id, ok := parseID(ctx, "review")
	if !ok {
		return
	}
	var patch models.ReviewPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	review, svcErr := rc.reviewService.UpdateReview(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// DeleteReview handles DELETE /reviews/:id.
func (rc *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseID(ctx, "review")
	if !ok {
		return
	}

	if svcErr := rc.reviewService.DeleteReview(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"sandwich-service/models"
	"sandwich-service/services"

	"github.com/gin-gonic/gin"
)

// RecipeController handles HTTP requests for recipes.
type RecipeController struct {
	recipeService services.RecipeService
}

func NewRecipeController(recipeService services.RecipeService) *RecipeController {
	return &RecipeController{recipeService: recipeService}
}

// CreateRecipe handles POST /recipes.
func (rc *RecipeController) CreateRecipe(ctx *gin.Context) {
	var req models.CreateRecipeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	recipe, svcErr := rc.recipeService.CreateRecipe(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, recipe)
}

func (rc *RecipeController) ListRecipes(ctx *gin.Context) {
	recipes, svcErr := rc.recipeService.ListRecipes(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, recipes)
}

func (rc *RecipeController) GetRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "recipe")
	if !ok {
		return
	}

	recipe, svcErr := rc.recipeService.GetRecipe(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) UpdateRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "recipe")
	if !ok {
		return
	}
	var patch models.RecipePatch
	if !bindJSON(ctx, &patch) {
		return
	}

	recipe, svcErr := rc.recipeService.UpdateRecipe(ctx.Request.Context(), id, &patch)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) DeleteRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "recipe")
	if !ok {
		return
	}

	if svcErr := rc.recipeService.DeleteRecipe(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// RecipeService defines the interface for recipe business logic.
type RecipeService interface {
	CreateRecipe(ctx context.Context, req *models.CreateRecipeRequest) (*models.Recipe, *ServiceError)
	ListRecipes(ctx context.Context) ([]models.Recipe, *ServiceError)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, *ServiceError)
	UpdateRecipe(ctx context.Context, id uint, patch *models.RecipePatch) (*models.Recipe, *ServiceError)
	DeleteRecipe(ctx context.Context, id uint) *ServiceError
}

type recipeServiceImpl struct {
	entityService
	repo repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(repo repository.RecipeRepository, publisher events.Publisher, logger *zap.Logger) RecipeService {
	return &recipeServiceImpl{
		entityService: newEntityService("Recipe", "recipe", publisher, logger),
		repo:          repo,
	}
}

func (s *recipeServiceImpl) CreateRecipe(ctx context.Context, req *models.CreateRecipeRequest) (*models.Recipe, *ServiceError) {
	recipe := &models.Recipe{
		SandwichID: req.SandwichID,
		ResourceID: req.ResourceID,
		Amount:     req.Amount,
		TimeToMake: req.TimeToMake,
	}
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, recipe.ID, recipe)
	return recipe, nil
}

func (s *recipeServiceImpl) ListRecipes(ctx context.Context) ([]models.Recipe, *ServiceError) {
	recipes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return recipes, nil
}

func (s *recipeServiceImpl) GetRecipe(ctx context.Context, id uint) (*models.Recipe, *ServiceError) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return recipe, nil
}

func (s *recipeServiceImpl) UpdateRecipe(ctx context.Context, id uint, patch *models.RecipePatch) (*models.Recipe, *ServiceError) {
	recipe, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, recipe.ID, recipe)
	return recipe, nil
}

func (s *recipeServiceImpl) DeleteRecipe(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

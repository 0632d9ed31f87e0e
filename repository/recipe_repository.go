package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// RecipeRepository defines data access for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	FindAll(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id uint) (*models.Recipe, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type GormRecipeRepository struct {
	*gormStore[models.Recipe]
}

func NewGormRecipeRepository(db *gorm.DB) RecipeRepository {
	return &GormRecipeRepository{gormStore: newGormStore[models.Recipe](db, "Sandwich", "Resource")}
}

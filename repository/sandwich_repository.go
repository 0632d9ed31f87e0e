package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// SandwichRepository defines data access for menu sandwiches.
type SandwichRepository interface {
	Create(ctx context.Context, sandwich *models.Sandwich) error
	FindAll(ctx context.Context) ([]models.Sandwich, error)
	FindByID(ctx context.Context, id uint) (*models.Sandwich, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Sandwich, error)
	Delete(ctx context.Context, id uint) error
}

// GormSandwichRepository implements SandwichRepository using GORM.
type GormSandwichRepository struct {
	*gormStore[models.Sandwich]
}

// NewGormSandwichRepository creates a new GormSandwichRepository.
func NewGormSandwichRepository(db *gorm.DB) SandwichRepository {
	return &GormSandwichRepository{gormStore: newGormStore[models.Sandwich](db)}
}

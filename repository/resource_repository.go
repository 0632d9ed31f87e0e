package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// ResourceRepository defines data access for inventory resources.
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	FindAll(ctx context.Context) ([]models.Resource, error)
	FindByID(ctx context.Context, id uint) (*models.Resource, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Resource, error)
	Delete(ctx context.Context, id uint) error
}

type GormResourceRepository struct {
	*gormStore[models.Resource]
}

func NewGormResourceRepository(db *gorm.DB) ResourceRepository {
	return &GormResourceRepository{gormStore: newGormStore[models.Resource](db)}
}

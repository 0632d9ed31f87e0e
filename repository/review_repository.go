package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindAll(ctx context.Context) ([]models.Review, error)
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Review, error)
	Delete(ctx context.Context, id uint) error
}

type GormReviewRepository struct {
	*gormStore[models.Review]
}

func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{gormStore: newGormStore[models.Review](db, "Customer", "Sandwich")}
}

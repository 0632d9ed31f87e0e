package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// OrderDetailRepository defines data access for order lines.
type OrderDetailRepository interface {
	Create(ctx context.Context, detail *models.OrderDetail) error
	FindAll(ctx context.Context) ([]models.OrderDetail, error)
	FindByID(ctx context.Context, id uint) (*models.OrderDetail, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.OrderDetail, error)
	Delete(ctx context.Context, id uint) error
}

// GormOrderDetailRepository implements OrderDetailRepository using GORM.
type GormOrderDetailRepository struct {
	*gormStore[models.OrderDetail]
}

// NewGormOrderDetailRepository creates a new GormOrderDetailRepository.
func NewGormOrderDetailRepository(db *gorm.DB) OrderDetailRepository {
	return &GormOrderDetailRepository{gormStore: newGormStore[models.OrderDetail](db, "Sandwich")}
}

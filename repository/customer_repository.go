package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindAll(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Customer, error)
	Delete(ctx context.Context, id uint) error
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	*gormStore[models.Customer]
}

// NewGormCustomerRepository creates a new GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{gormStore: newGormStore[models.Customer](db)}
}

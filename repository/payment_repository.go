package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id uint) (*models.Payment, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Payment, error)
	Delete(ctx context.Context, id uint) error
	// Total sums the amount of every payment; 0 when there are none.
	Total(ctx context.Context) (float64, error)
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	*gormStore[models.Payment]
}

// NewGormPaymentRepository creates a new GormPaymentRepository.
func NewGormPaymentRepository(db *gorm.DB) PaymentRepository {
	return &GormPaymentRepository{gormStore: newGormStore[models.Payment](db, "Order")}
}

func (r *GormPaymentRepository) Total(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Payment{}).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

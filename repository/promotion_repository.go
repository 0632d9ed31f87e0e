package repository

import (
	"context"

	"sandwich-service/models"

	"gorm.io/gorm"
)

// PromotionRepository defines data access for promotions.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *models.Promotion) error
	FindAll(ctx context.Context) ([]models.Promotion, error)
	FindByID(ctx context.Context, id uint) (*models.Promotion, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Promotion, error)
	Delete(ctx context.Context, id uint) error
}

// GormPromotionRepository implements PromotionRepository using GORM.
type GormPromotionRepository struct {
	*gormStore[models.Promotion]
}

// NewGormPromotionRepository creates a new GormPromotionRepository.
func NewGormPromotionRepository(db *gorm.DB) PromotionRepository {
	return &GormPromotionRepository{gormStore: newGormStore[models.Promotion](db, "Orders")}
}

// Delete unlinks the promotion from its orders before removing it. The orders
// themselves are kept.
func (r *GormPromotionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var promotion models.Promotion
		if err := tx.First(&promotion, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&promotion).Association("Orders").Clear(); err != nil {
			return err
		}
		return tx.Delete(&promotion).Error
	})
}

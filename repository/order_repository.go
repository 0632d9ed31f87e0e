package repository

import (
	"context"
	"errors"
	"time"

	"sandwich-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPromotionNotFound is returned when an order references a promotion id
// that does not exist.
var ErrPromotionNotFound = errors.New("promotion not found")

// OrderRepository defines data access for orders and their promotion links.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, promotionIDs []uint) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindAllSortedByDate(ctx context.Context, minDate *time.Time) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}, promotionIDs *[]uint) (*models.Order, error)
	Delete(ctx context.Context, id uint) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	*gormStore[models.Order]
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{gormStore: newGormStore[models.Order](db, "OrderDetails", "Promotions")}
}

// Create inserts the order and links it to the given promotions.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order, promotionIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		if len(promotionIDs) > 0 {
			if err := replacePromotions(tx, order, promotionIDs); err != nil {
				return err
			}
		}
		return r.withPreloads(tx).First(order, order.ID).Error
	})
}

// FindAllSortedByDate returns orders newest first. When minDate is set, orders
// placed before it are excluded.
func (r *GormOrderRepository) FindAllSortedByDate(ctx context.Context, minDate *time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := r.withPreloads(tx)
		if minDate != nil {
			query = query.Where("order_date >= ?", *minDate)
		}
		return query.Order("order_date DESC").Find(&orders).Error
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Update overwrites the given columns. A non-nil promotionIDs replaces the
// order's promotion set; an empty list clears it.
func (r *GormOrderRepository) Update(ctx context.Context, id uint, changes map[string]interface{}, promotionIDs *[]uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Order
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&current).Updates(changes).Error; err != nil {
				return err
			}
		}
		if promotionIDs != nil {
			if err := replacePromotions(tx, &current, *promotionIDs); err != nil {
				return err
			}
		}
		return r.withPreloads(tx).First(&order, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete unlinks the order's promotions and removes the order. Details and
// payments still referencing the order make the delete fail.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&order).Association("Promotions").Clear(); err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

func replacePromotions(tx *gorm.DB, order *models.Order, ids []uint) error {
	assoc := tx.Model(order).Omit("Promotions.*").Association("Promotions")
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return assoc.Clear()
	}

	var promotions []models.Promotion
	if err := tx.Where("id IN ?", ids).Find(&promotions).Error; err != nil {
		return err
	}
	if len(promotions) != len(ids) {
		return ErrPromotionNotFound
	}
	return assoc.Replace(promotions)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

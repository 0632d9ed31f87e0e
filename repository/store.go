package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore implements the CRUD operations shared by every entity repository.
// Each call runs in its own transaction, committed on success and rolled back
// on any error. Relations named in preloads are loaded one level deep.
type gormStore[T any] struct {
	db       *gorm.DB
	preloads []string
}

func newGormStore[T any](db *gorm.DB, preloads ...string) *gormStore[T] {
	return &gormStore[T]{db: db, preloads: preloads}
}

func (s *gormStore[T]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range s.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts row and fills in its generated id and relations.
func (s *gormStore[T]) Create(ctx context.Context, row *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(row).Error; err != nil {
			return err
		}
		if len(s.preloads) == 0 {
			return nil
		}
		return s.withPreloads(tx).First(row).Error
	})
}

// FindAll returns every row ordered by id.
func (s *gormStore[T]) FindAll(ctx context.Context) ([]T, error) {
	var rows []T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.withPreloads(tx).Order("id ASC").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns gorm.ErrRecordNotFound when no row has the id.
func (s *gormStore[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.withPreloads(tx).First(&row, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update overwrites the given columns and returns the reloaded row.
// An empty change set only reloads the row.
func (s *gormStore[T]) Update(ctx context.Context, id uint, changes map[string]interface{}) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&current).Updates(changes).Error; err != nil {
				return err
			}
		}
		return s.withPreloads(tx).First(&row, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes the row, returning gorm.ErrRecordNotFound when it does not exist.
func (s *gormStore[T]) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
}

package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/pkg/logger"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// MenuCache caches the full sandwich list.
type MenuCache interface {
	GetSandwiches(ctx context.Context) (sandwiches []models.Sandwich, version int64, ok bool, err error)
	SetSandwiches(ctx context.Context, version int64, sandwiches []models.Sandwich) error
	Invalidate(ctx context.Context) error
}

// SandwichService defines the interface for menu business logic.
type SandwichService interface {
	CreateSandwich(ctx context.Context, req *models.CreateSandwichRequest) (*models.Sandwich, *ServiceError)
	ListSandwiches(ctx context.Context) ([]models.Sandwich, *ServiceError)
	GetSandwich(ctx context.Context, id uint) (*models.Sandwich, *ServiceError)
	UpdateSandwich(ctx context.Context, id uint, patch *models.SandwichPatch) (*models.Sandwich, *ServiceError)
	DeleteSandwich(ctx context.Context, id uint) *ServiceError
}

type sandwichServiceImpl struct {
	entityService
	repo  repository.SandwichRepository
	cache MenuCache
}

// NewSandwichService creates a new SandwichService. cache may be nil, in which
// case every list is read from the database.
func NewSandwichService(repo repository.SandwichRepository, cache MenuCache, publisher events.Publisher, logger *zap.Logger) SandwichService {
	return &sandwichServiceImpl{
		entityService: newEntityService("Sandwich", "sandwich", publisher, logger),
		repo:          repo,
		cache:         cache,
	}
}

func (s *sandwichServiceImpl) CreateSandwich(ctx context.Context, req *models.CreateSandwichRequest) (*models.Sandwich, *ServiceError) {
	sandwich := &models.Sandwich{
		SandwichName: req.SandwichName,
		Price:        req.Price,
		Calories:     req.Calories,
		FoodCategory: req.FoodCategory,
	}
	if err := s.repo.Create(ctx, sandwich); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.invalidateMenu(ctx)
	s.publish(ctx, models.ActionCreated, sandwich.ID, sandwich)
	return sandwich, nil
}

func (s *sandwichServiceImpl) ListSandwiches(ctx context.Context) ([]models.Sandwich, *ServiceError) {
	log := logger.FromContext(ctx, s.logger)

	var (
		version   int64
		cacheable bool
	)
	if s.cache != nil {
		cached, ver, ok, err := s.cache.GetSandwiches(ctx)
		switch {
		case err != nil:
			log.Warn("Menu cache read failed", zap.Error(err))
		case ok:
			return cached, nil
		default:
			version, cacheable = ver, true
		}
	}

	sandwiches, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}

	if cacheable {
		if err := s.cache.SetSandwiches(ctx, version, sandwiches); err != nil {
			log.Warn("Menu cache write failed", zap.Error(err))
		}
	}
	return sandwiches, nil
}

func (s *sandwichServiceImpl) GetSandwich(ctx context.Context, id uint) (*models.Sandwich, *ServiceError) {
	sandwich, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return sandwich, nil
}

func (s *sandwichServiceImpl) UpdateSandwich(ctx context.Context, id uint, patch *models.SandwichPatch) (*models.Sandwich, *ServiceError) {
	sandwich, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.invalidateMenu(ctx)
	s.publish(ctx, models.ActionUpdated, sandwich.ID, sandwich)
	return sandwich, nil
}

func (s *sandwichServiceImpl) DeleteSandwich(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.invalidateMenu(ctx)
	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

func (s *sandwichServiceImpl) invalidateMenu(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx, s.logger).Warn("Menu cache invalidation failed", zap.Error(err))
	}
}

package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// PromotionService defines the interface for promotion business logic.
type PromotionService interface {
	CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.Promotion, *ServiceError)
	ListPromotions(ctx context.Context) ([]models.Promotion, *ServiceError)
	GetPromotion(ctx context.Context, id uint) (*models.Promotion, *ServiceError)
	UpdatePromotion(ctx context.Context, id uint, patch *models.PromotionPatch) (*models.Promotion, *ServiceError)
	DeletePromotion(ctx context.Context, id uint) *ServiceError
}

type promotionServiceImpl struct {
	entityService
	repo repository.PromotionRepository
}

// NewPromotionService creates a new PromotionService.
func NewPromotionService(repo repository.PromotionRepository, publisher events.Publisher, logger *zap.Logger) PromotionService {
	return &promotionServiceImpl{
		entityService: newEntityService("Promotion", "promotion", publisher, logger),
		repo:          repo,
	}
}

func (s *promotionServiceImpl) CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.Promotion, *ServiceError) {
	promotion := &models.Promotion{
		PromotionCode:  req.PromotionCode,
		ExpirationDate: req.ExpirationDate,
	}
	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, promotion.ID, promotion)
	return promotion, nil
}

func (s *promotionServiceImpl) ListPromotions(ctx context.Context) ([]models.Promotion, *ServiceError) {
	promotions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return promotions, nil
}

func (s *promotionServiceImpl) GetPromotion(ctx context.Context, id uint) (*models.Promotion, *ServiceError) {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return promotion, nil
}

func (s *promotionServiceImpl) UpdatePromotion(ctx context.Context, id uint, patch *models.PromotionPatch) (*models.Promotion, *ServiceError) {
	promotion, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, promotion.ID, promotion)
	return promotion, nil
}

func (s *promotionServiceImpl) DeletePromotion(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

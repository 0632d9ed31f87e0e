package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// ReviewService defines the interface for review business logic.
type ReviewService interface {
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, *ServiceError)
	ListReviews(ctx context.Context) ([]models.Review, *ServiceError)
	GetReview(ctx context.Context, id uint) (*models.Review, *ServiceError)
	UpdateReview(ctx context.Context, id uint, patch *models.ReviewPatch) (*models.Review, *ServiceError)
	DeleteReview(ctx context.Context, id uint) *ServiceError
}

type reviewServiceImpl struct {
	entityService
	repo repository.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ReviewRepository, publisher events.Publisher, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{
		entityService: newEntityService("Review", "review", publisher, logger),
		repo:          repo,
	}
}

func (s *reviewServiceImpl) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, *ServiceError) {
	review := &models.Review{
		CustomerID: req.CustomerID,
		SandwichID: req.SandwichID,
		ReviewText: req.ReviewText,
		Score:      req.Score,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, review.ID, review)
	return review, nil
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context) ([]models.Review, *ServiceError) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return reviews, nil
}

func (s *reviewServiceImpl) GetReview(ctx context.Context, id uint) (*models.Review, *ServiceError) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return review, nil
}

func (s *reviewServiceImpl) UpdateReview(ctx context.Context, id uint, patch *models.ReviewPatch) (*models.Review, *ServiceError) {
	review, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, review.ID, review)
	return review, nil
}

func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

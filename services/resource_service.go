package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// ResourceService defines the interface for resource business logic.
type ResourceService interface {
	CreateResource(ctx context.Context, req *models.CreateResourceRequest) (*models.Resource, *ServiceError)
	ListResources(ctx context.Context) ([]models.Resource, *ServiceError)
	GetResource(ctx context.Context, id uint) (*models.Resource, *ServiceError)
	UpdateResource(ctx context.Context, id uint, patch *models.ResourcePatch) (*models.Resource, *ServiceError)
	DeleteResource(ctx context.Context, id uint) *ServiceError
}

type resourceServiceImpl struct {
	entityService
	repo repository.ResourceRepository
}

// NewResourceService creates a new ResourceService.
func NewResourceService(repo repository.ResourceRepository, publisher events.Publisher, logger *zap.Logger) ResourceService {
	return &resourceServiceImpl{
		entityService: newEntityService("Resource", "resource", publisher, logger),
		repo:          repo,
	}
}

func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *models.CreateResourceRequest) (*models.Resource, *ServiceError) {
	resource := &models.Resource{
		Item:   req.Item,
		Amount: req.Amount,
	}
	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, resource.ID, resource)
	return resource, nil
}

func (s *resourceServiceImpl) ListResources(ctx context.Context) ([]models.Resource, *ServiceError) {
	resources, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return resources, nil
}

func (s *resourceServiceImpl) GetResource(ctx context.Context, id uint) (*models.Resource, *ServiceError) {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return resource, nil
}

func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id uint, patch *models.ResourcePatch) (*models.Resource, *ServiceError) {
	resource, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, resource.ID, resource)
	return resource, nil
}

func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

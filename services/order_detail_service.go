package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// OrderDetailService defines the interface for order detail business logic.
type OrderDetailService interface {
	CreateOrderDetail(ctx context.Context, req *models.CreateOrderDetailRequest) (*models.OrderDetail, *ServiceError)
	ListOrderDetails(ctx context.Context) ([]models.OrderDetail, *ServiceError)
	GetOrderDetail(ctx context.Context, id uint) (*models.OrderDetail, *ServiceError)
	UpdateOrderDetail(ctx context.Context, id uint, patch *models.OrderDetailPatch) (*models.OrderDetail, *ServiceError)
	DeleteOrderDetail(ctx context.Context, id uint) *ServiceError
}

type orderDetailServiceImpl struct {
	entityService
	repo repository.OrderDetailRepository
}

// NewOrderDetailService creates a new OrderDetailService.
func NewOrderDetailService(repo repository.OrderDetailRepository, publisher events.Publisher, logger *zap.Logger) OrderDetailService {
	return &orderDetailServiceImpl{
		entityService: newEntityService("Order detail", "order_detail", publisher, logger),
		repo:          repo,
	}
}

func (s *orderDetailServiceImpl) CreateOrderDetail(ctx context.Context, req *models.CreateOrderDetailRequest) (*models.OrderDetail, *ServiceError) {
	detail := &models.OrderDetail{
		OrderID:    req.OrderID,
		SandwichID: req.SandwichID,
		Amount:     req.Amount,
	}
	if err := s.repo.Create(ctx, detail); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, detail.ID, detail)
	return detail, nil
}

func (s *orderDetailServiceImpl) ListOrderDetails(ctx context.Context) ([]models.OrderDetail, *ServiceError) {
	details, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return details, nil
}

func (s *orderDetailServiceImpl) GetOrderDetail(ctx context.Context, id uint) (*models.OrderDetail, *ServiceError) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return detail, nil
}

func (s *orderDetailServiceImpl) UpdateOrderDetail(ctx context.Context, id uint, patch *models.OrderDetailPatch) (*models.OrderDetail, *ServiceError) {
	detail, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, detail.ID, detail)
	return detail, nil
}

func (s *orderDetailServiceImpl) DeleteOrderDetail(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

package services

import (
	"context"
	"time"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// OrderService defines the interface for order business logic.
type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	// ListOrdersByDate returns orders newest first, dropping those placed
	// before minDate when it is set.
	ListOrdersByDate(ctx context.Context, minDate *time.Time) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id uint, patch *models.OrderPatch) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uint) *ServiceError
}

type orderServiceImpl struct {
	entityService
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, publisher events.Publisher, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		entityService: newEntityService("Order", "order", publisher, logger),
		repo:          repo,
		now:           time.Now,
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	status := req.Status
	if status == "" {
		status = models.DefaultOrderStatus
	}

	order := &models.Order{
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		OrderDate:      s.now().UTC(),
		TrackingNumber: req.TrackingNumber,
		OrderStatus:    req.OrderStatus,
		Status:         status,
		TotalPrice:     req.TotalPrice,
		Description:    req.Description,
	}
	if err := s.repo.Create(ctx, order, req.PromotionIDs); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.logger.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.Int("promotions", len(order.Promotions)),
	)
	s.publish(ctx, models.ActionCreated, order.ID, order)
	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return orders, nil
}

func (s *orderServiceImpl) ListOrdersByDate(ctx context.Context, minDate *time.Time) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindAllSortedByDate(ctx, minDate)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return orders, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return order, nil
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id uint, patch *models.OrderPatch) (*models.Order, *ServiceError) {
	order, err := s.repo.Update(ctx, id, patch.Changes(), patch.PromotionIDs)
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, order.ID, order)
	return order, nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.logger.Info("Order deleted", zap.Uint("order_id", id))
	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

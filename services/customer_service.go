package services

import (
	"context"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// CustomerService defines the interface for customer business logic.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError)
	ListCustomers(ctx context.Context) ([]models.Customer, *ServiceError)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, *ServiceError)
	UpdateCustomer(ctx context.Context, id uint, patch *models.CustomerPatch) (*models.Customer, *ServiceError)
	DeleteCustomer(ctx context.Context, id uint) *ServiceError
}

type customerServiceImpl struct {
	entityService
	repo repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repository.CustomerRepository, publisher events.Publisher, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{
		entityService: newEntityService("Customer", "customer", publisher, logger),
		repo:          repo,
	}
}

func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError) {
	customer := &models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, customer.ID, customer)
	return customer, nil
}

func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]models.Customer, *ServiceError) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return customers, nil
}

func (s *customerServiceImpl) GetCustomer(ctx context.Context, id uint) (*models.Customer, *ServiceError) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return customer, nil
}

func (s *customerServiceImpl) UpdateCustomer(ctx context.Context, id uint, patch *models.CustomerPatch) (*models.Customer, *ServiceError) {
	customer, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, customer.ID, customer)
	return customer, nil
}

func (s *customerServiceImpl) DeleteCustomer(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

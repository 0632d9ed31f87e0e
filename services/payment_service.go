package services

import (
	"context"
	"math"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/repository"

	"go.uber.org/zap"
)

// PaymentService defines the interface for payment business logic.
type PaymentService interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *ServiceError)
	ListPayments(ctx context.Context) ([]models.Payment, *ServiceError)
	GetPayment(ctx context.Context, id uint) (*models.Payment, *ServiceError)
	UpdatePayment(ctx context.Context, id uint, patch *models.PaymentPatch) (*models.Payment, *ServiceError)
	DeletePayment(ctx context.Context, id uint) *ServiceError
	GetTotalPayments(ctx context.Context) (*models.PaymentTotal, *ServiceError)
}

type paymentServiceImpl struct {
	entityService
	repo repository.PaymentRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(repo repository.PaymentRepository, publisher events.Publisher, logger *zap.Logger) PaymentService {
	return &paymentServiceImpl{
		entityService: newEntityService("Payment", "payment", publisher, logger),
		repo:          repo,
	}
}

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *ServiceError) {
	payment := &models.Payment{
		OrderID:           req.OrderID,
		CardInformation:   req.CardInformation,
		TransactionStatus: req.TransactionStatus,
		PaymentType:       req.PaymentType,
		Amount:            req.Amount,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, s.fail(ctx, opCreate, err)
	}

	s.publish(ctx, models.ActionCreated, payment.ID, payment)
	return payment, nil
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context) ([]models.Payment, *ServiceError) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, opList, err)
	}
	return payments, nil
}

func (s *paymentServiceImpl) GetPayment(ctx context.Context, id uint) (*models.Payment, *ServiceError) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, opGet, err)
	}
	return payment, nil
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, id uint, patch *models.PaymentPatch) (*models.Payment, *ServiceError) {
	payment, err := s.repo.Update(ctx, id, patch.Changes())
	if err != nil {
		return nil, s.fail(ctx, opUpdate, err)
	}

	s.publish(ctx, models.ActionUpdated, payment.ID, payment)
	return payment, nil
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, opDelete, err)
	}

	s.publish(ctx, models.ActionDeleted, id, nil)
	return nil
}

// GetTotalPayments sums every payment amount, rounded to cents.
func (s *paymentServiceImpl) GetTotalPayments(ctx context.Context) (*models.PaymentTotal, *ServiceError) {
	total, err := s.repo.Total(ctx)
	if err != nil {
		return nil, s.fail(ctx, opTotal, err)
	}
	return &models.PaymentTotal{Total: math.Round(total*100) / 100}, nil
}

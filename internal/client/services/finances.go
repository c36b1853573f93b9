package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const paymentsPath = "/finances/payments"

// FinanceService manages student payments and the trainer's revenue summary.
type FinanceService interface {
	// Payments lists payments, optionally narrowed by student and status.
	Payments(ctx context.Context, studentID string, status models.PaymentStatus) (*models.PaymentsResponse, error)
	Summary(ctx context.Context) (*models.FinancialSummary, error)
	Payment(ctx context.Context, id string) (*models.Payment, error)
	CreatePayment(ctx context.Context, data models.CreatePaymentData) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id string, data models.UpdatePaymentData) (*models.Payment, error)
	MarkPaid(ctx context.Context, id string) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

type financeService struct {
	api API
}

func NewFinanceService(api API) FinanceService {
	return &financeService{api: api}
}

func (s *financeService) Payments(ctx context.Context, studentID string, status models.PaymentStatus) (*models.PaymentsResponse, error) {
	var out models.PaymentsResponse
	q := optionalQuery("studentId", studentID, "status", string(status))
	if err := s.api.Get(ctx, paymentsPath, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *financeService) Summary(ctx context.Context) (*models.FinancialSummary, error) {
	var out models.FinancialSummary
	if err := s.api.Get(ctx, "/finances/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *financeService) Payment(ctx context.Context, id string) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.Get(ctx, resourcePath(paymentsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *financeService) CreatePayment(ctx context.Context, data models.CreatePaymentData) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.Post(ctx, paymentsPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *financeService) UpdatePayment(ctx context.Context, id string, data models.UpdatePaymentData) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.Patch(ctx, resourcePath(paymentsPath, id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *financeService) MarkPaid(ctx context.Context, id string) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.Patch(ctx, resourcePath(paymentsPath, id, "pay"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *financeService) DeletePayment(ctx context.Context, id string) error {
	return s.api.Delete(ctx, resourcePath(paymentsPath, id))
}

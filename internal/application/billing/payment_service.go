package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/shared"
)

// PaymentService handles payment reconciliation operations. Payments are
// deliberately decoupled from the fee lifecycle: nothing here ever
// touches the owning fee's status.
type PaymentService struct {
	paymentRepo     billing.PaymentRepository
	feeRepo         billing.FeeRepository
	paymentTypeRepo billing.PaymentTypeRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo billing.PaymentRepository, feeRepo billing.FeeRepository, paymentTypeRepo billing.PaymentTypeRepository) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		feeRepo:         feeRepo,
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Create records a payment against one of the owner's fees. The fee and
// payment type must exist.
func (s *PaymentService) Create(ctx context.Context, ownerID uuid.UUID, req CreatePaymentRequest) (*PaymentResponse, error) {
	if _, err := s.feeRepo.FindByID(ctx, ownerID, req.HonorarioID); err != nil {
		return nil, err
	}
	if _, err := s.paymentTypeRepo.FindByID(ctx, req.TipoPagamentoID); err != nil {
		return nil, err
	}

	var paymentDate time.Time
	if req.DataPagamento != "" {
		parsed, err := time.Parse(DateLayout, req.DataPagamento)
		if err != nil {
			return nil, shared.NewValidationError("data_pagamento must be a YYYY-MM-DD date")
		}
		paymentDate = parsed
	}

	payment, err := billing.NewPayment(ownerID, req.HonorarioID, req.Valor, paymentDate, req.TipoPagamentoID, req.Observacao)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	created, err := s.paymentRepo.FindByID(ctx, ownerID, payment.ID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(created)
	return &response, nil
}

// GetByID retrieves one of the owner's payments with its fee and payment
// type attached
func (s *PaymentService) GetByID(ctx context.Context, ownerID, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, ownerID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves the owner's payments matching the filter
func (s *PaymentService) List(ctx context.Context, ownerID uuid.UUID, filter billing.PaymentFilter, page shared.Page) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx, ownerID, filter, page)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, nil
}

// Update applies a partial update to a payment
func (s *PaymentService) Update(ctx context.Context, ownerID, paymentID uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, ownerID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Valor != nil {
		if err := payment.SetAmount(*req.Valor); err != nil {
			return nil, err
		}
	}
	if req.DataPagamento != nil {
		paymentDate, err := time.Parse(DateLayout, *req.DataPagamento)
		if err != nil {
			return nil, shared.NewValidationError("data_pagamento must be a YYYY-MM-DD date")
		}
		if err := payment.SetPaymentDate(paymentDate); err != nil {
			return nil, err
		}
	}
	if req.TipoPagamentoID != nil {
		if _, err := s.paymentTypeRepo.FindByID(ctx, *req.TipoPagamentoID); err != nil {
			return nil, err
		}
		if err := payment.SetPaymentType(*req.TipoPagamentoID); err != nil {
			return nil, err
		}
	}
	if req.Observacao != nil {
		payment.SetNote(*req.Observacao)
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	updated, err := s.paymentRepo.FindByID(ctx, ownerID, payment.ID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(updated)
	return &response, nil
}

// SoftDelete marks a payment as deleted without touching its fee
func (s *PaymentService) SoftDelete(ctx context.Context, ownerID, paymentID uuid.UUID) error {
	return s.paymentRepo.SoftDelete(ctx, ownerID, paymentID)
}

// Restore brings a soft-deleted payment back without touching its fee
func (s *PaymentService) Restore(ctx context.Context, ownerID, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.Restore(ctx, ownerID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// HardDelete removes a payment permanently
func (s *PaymentService) HardDelete(ctx context.Context, ownerID, paymentID uuid.UUID) error {
	return s.paymentRepo.HardDelete(ctx, ownerID, paymentID)
}

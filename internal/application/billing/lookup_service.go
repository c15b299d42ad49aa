package billing

import (
	"context"

	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/shared"
)

// LookupService handles the global status and payment type tables. The
// data is shared across owners; authentication is still required to
// reach it.
type LookupService struct {
	statusRepo      billing.StatusRepository
	paymentTypeRepo billing.PaymentTypeRepository
}

// NewLookupService creates a new LookupService
func NewLookupService(statusRepo billing.StatusRepository, paymentTypeRepo billing.PaymentTypeRepository) *LookupService {
	return &LookupService{statusRepo: statusRepo, paymentTypeRepo: paymentTypeRepo}
}

// ListStatuses lists all statuses
func (s *LookupService) ListStatuses(ctx context.Context) ([]LookupResponse, error) {
	statuses, err := s.statusRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]LookupResponse, len(statuses))
	for i := range statuses {
		responses[i] = ToStatusResponse(&statuses[i])
	}
	return responses, nil
}

// GetStatus retrieves a status by id
func (s *LookupService) GetStatus(ctx context.Context, id uint) (*LookupResponse, error) {
	status, err := s.statusRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// CreateStatus creates a new status row
func (s *LookupService) CreateStatus(ctx context.Context, req LookupRequest) (*LookupResponse, error) {
	status, err := billing.NewStatus(req.Nome, req.Descricao)
	if err != nil {
		return nil, err
	}
	if err := s.statusRepo.Save(ctx, status); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// UpdateStatus renames a status row
func (s *LookupService) UpdateStatus(ctx context.Context, id uint, req LookupRequest) (*LookupResponse, error) {
	status, err := s.statusRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := status.Rename(req.Nome, req.Descricao); err != nil {
		return nil, err
	}
	if err := s.statusRepo.Save(ctx, status); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// ListPaymentTypes lists all payment types
func (s *LookupService) ListPaymentTypes(ctx context.Context) ([]LookupResponse, error) {
	types, err := s.paymentTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]LookupResponse, len(types))
	for i := range types {
		responses[i] = ToPaymentTypeResponse(&types[i])
	}
	return responses, nil
}

// GetPaymentType retrieves a payment type by id
func (s *LookupService) GetPaymentType(ctx context.Context, id uint) (*LookupResponse, error) {
	paymentType, err := s.paymentTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentTypeResponse(paymentType)
	return &response, nil
}

// CreatePaymentType creates a new payment type row
func (s *LookupService) CreatePaymentType(ctx context.Context, req LookupRequest) (*LookupResponse, error) {
	paymentType, err := billing.NewPaymentType(req.Nome, req.Descricao)
	if err != nil {
		return nil, err
	}
	if err := s.paymentTypeRepo.Save(ctx, paymentType); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	response := ToPaymentTypeResponse(paymentType)
	return &response, nil
}

// UpdatePaymentType renames a payment type row
func (s *LookupService) UpdatePaymentType(ctx context.Context, id uint, req LookupRequest) (*LookupResponse, error) {
	paymentType, err := s.paymentTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := paymentType.Rename(req.Nome, req.Descricao); err != nil {
		return nil, err
	}
	if err := s.paymentTypeRepo.Save(ctx, paymentType); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	response := ToPaymentTypeResponse(paymentType)
	return &response, nil
}

package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/partner"
	"github.com/honoraria/backend/internal/domain/shared"
)

// FeeService handles fee lifecycle operations
type FeeService struct {
	feeRepo    billing.FeeRepository
	clientRepo partner.ClientRepository
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo billing.FeeRepository, clientRepo partner.ClientRepository) *FeeService {
	return &FeeService{feeRepo: feeRepo, clientRepo: clientRepo}
}

// Create creates a fee for one of the owner's clients. The client must
// exist and not be deleted.
func (s *FeeService) Create(ctx context.Context, ownerID uuid.UUID, req CreateFeeRequest) (*FeeResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, ownerID, req.ClienteID); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(DateLayout, req.DataVencimento)
	if err != nil {
		return nil, shared.NewValidationError("data_vencimento must be a YYYY-MM-DD date")
	}

	fee, err := billing.NewFee(ownerID, req.ClienteID, req.Valor, req.StatusID, dueDate, req.MesReferencia, req.Descricao, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.feeRepo.Save(ctx, fee); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	created, err := s.feeRepo.FindByID(ctx, ownerID, fee.ID)
	if err != nil {
		return nil, err
	}
	response := ToFeeResponse(created)
	return &response, nil
}

// GetByID retrieves one of the owner's fees with client and status attached
func (s *FeeService) GetByID(ctx context.Context, ownerID, feeID uuid.UUID) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByID(ctx, ownerID, feeID)
	if err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// List retrieves the owner's fees matching the filter
func (s *FeeService) List(ctx context.Context, ownerID uuid.UUID, filter billing.FeeFilter, page shared.Page) ([]FeeResponse, error) {
	fees, err := s.feeRepo.FindAll(ctx, ownerID, filter, page)
	if err != nil {
		return nil, err
	}

	responses := make([]FeeResponse, len(fees))
	for i := range fees {
		responses[i] = ToFeeResponse(&fees[i])
	}
	return responses, nil
}

// Update applies a partial update to a fee. Absent fields keep their
// stored value; an explicit null mes_referencia re-defaults to the
// current month.
func (s *FeeService) Update(ctx context.Context, ownerID, feeID uuid.UUID, req UpdateFeeRequest) (*FeeResponse, error) {
	fee, err := s.feeRepo.FindByID(ctx, ownerID, feeID)
	if err != nil {
		return nil, err
	}

	if req.ClienteID != nil {
		if _, err := s.clientRepo.FindByID(ctx, ownerID, *req.ClienteID); err != nil {
			return nil, err
		}
		fee.ClientID = *req.ClienteID
	}
	if req.Valor != nil {
		if err := fee.SetAmount(*req.Valor); err != nil {
			return nil, err
		}
	}
	if req.StatusID != nil {
		fee.SetStatus(*req.StatusID)
	}
	if req.DataVencimento != nil {
		dueDate, err := time.Parse(DateLayout, *req.DataVencimento)
		if err != nil {
			return nil, shared.NewValidationError("data_vencimento must be a YYYY-MM-DD date")
		}
		if err := fee.SetDueDate(dueDate); err != nil {
			return nil, err
		}
	}
	if req.MesReferencia.Set {
		month := ""
		if req.MesReferencia.Value != nil {
			month = *req.MesReferencia.Value
		}
		if err := fee.SetReferenceMonth(month, time.Now()); err != nil {
			return nil, err
		}
	}
	if req.Descricao != nil {
		fee.SetDescription(*req.Descricao)
	}

	if err := s.feeRepo.Save(ctx, fee); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	updated, err := s.feeRepo.FindByID(ctx, ownerID, fee.ID)
	if err != nil {
		return nil, err
	}
	response := ToFeeResponse(updated)
	return &response, nil
}

// Delete soft-deletes a fee
func (s *FeeService) Delete(ctx context.Context, ownerID, feeID uuid.UUID) error {
	return s.feeRepo.SoftDelete(ctx, ownerID, feeID)
}

// Restore brings a soft-deleted fee back
func (s *FeeService) Restore(ctx context.Context, ownerID, feeID uuid.UUID) (*FeeResponse, error) {
	fee, err := s.feeRepo.Restore(ctx, ownerID, feeID)
	if err != nil {
		return nil, err
	}

	response := ToFeeResponse(fee)
	return &response, nil
}

// CheckOverdue sweeps the owner's pending fees whose due date already
// passed, marking them overdue in one batch, and reports the count.
func (s *FeeService) CheckOverdue(ctx context.Context, ownerID uuid.UUID, now time.Time) (*CheckOverdueResponse, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.feeRepo.MarkOverdue(ctx, ownerID, today)
	if err != nil {
		return nil, err
	}

	return &CheckOverdueResponse{
		Message:      fmt.Sprintf("%d honorário(s) marcado(s) como atrasado(s)", count),
		UpdatedCount: count,
	}, nil
}

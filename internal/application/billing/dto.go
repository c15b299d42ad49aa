package billing

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	appartner "github.com/honoraria/backend/internal/application/partner"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for date-only fields
const DateLayout = "2006-01-02"

// OptionalString distinguishes an absent JSON field from an explicit null
// or value. Fee updates need this: an absent mes_referencia keeps the
// stored month, while an explicit null re-defaults it.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON flags the field as present; a JSON null leaves Value nil
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// CreateFeeRequest represents a request to create a fee
type CreateFeeRequest struct {
	ClienteID      uuid.UUID       `json:"cliente_id" binding:"required"`
	Valor          decimal.Decimal `json:"valor" binding:"required"`
	StatusID       *uint           `json:"status_id"`
	DataVencimento string          `json:"data_vencimento" binding:"required,datetime=2006-01-02"`
	MesReferencia  string          `json:"mes_referencia" binding:"omitempty,refmonth"`
	Descricao      string          `json:"descricao"`
}

// UpdateFeeRequest represents a partial update of a fee. Absent fields
// keep their stored value; mes_referencia set to null re-defaults to the
// current month.
type UpdateFeeRequest struct {
	ClienteID      *uuid.UUID       `json:"cliente_id"`
	Valor          *decimal.Decimal `json:"valor"`
	StatusID       *uint            `json:"status_id"`
	DataVencimento *string          `json:"data_vencimento" binding:"omitempty,datetime=2006-01-02"`
	MesReferencia  OptionalString   `json:"mes_referencia"`
	Descricao      *string          `json:"descricao"`
}

// FeeResponse represents a fee in API responses
type FeeResponse struct {
	ID             uuid.UUID                  `json:"id"`
	ClienteID      uuid.UUID                  `json:"cliente_id"`
	Valor          decimal.Decimal            `json:"valor"`
	StatusID       uint                       `json:"status_id"`
	DataVencimento string                     `json:"data_vencimento"`
	MesReferencia  string                     `json:"mes_referencia"`
	Descricao      string                     `json:"descricao,omitempty"`
	Cliente        *appartner.ClientResponse  `json:"cliente,omitempty"`
	Status         *LookupResponse            `json:"status,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// ToFeeResponse maps a domain fee to its API representation, carrying
// attached associations when loaded
func ToFeeResponse(f *billing.Fee) FeeResponse {
	resp := FeeResponse{
		ID:             f.ID,
		ClienteID:      f.ClientID,
		Valor:          f.Amount,
		StatusID:       f.StatusID,
		DataVencimento: f.DueDate.Format(DateLayout),
		MesReferencia:  f.ReferenceMonth,
		Descricao:      f.Description,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
	if f.Client != nil {
		client := appartner.ToClientResponse(f.Client)
		resp.Cliente = &client
	}
	if f.Status != nil {
		status := ToStatusResponse(f.Status)
		resp.Status = &status
	}
	return resp
}

// CheckOverdueResponse reports the outcome of an overdue sweep
type CheckOverdueResponse struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updated_count"`
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	HonorarioID     uuid.UUID       `json:"honorario_id" binding:"required"`
	Valor           decimal.Decimal `json:"valor" binding:"required"`
	DataPagamento   string          `json:"data_pagamento" binding:"omitempty,datetime=2006-01-02"`
	TipoPagamentoID uint            `json:"tipo_pagamento_id" binding:"required"`
	Observacao      string          `json:"observacao"`
}

// UpdatePaymentRequest represents a partial update of a payment
type UpdatePaymentRequest struct {
	Valor           *decimal.Decimal `json:"valor"`
	DataPagamento   *string          `json:"data_pagamento" binding:"omitempty,datetime=2006-01-02"`
	TipoPagamentoID *uint            `json:"tipo_pagamento_id"`
	Observacao      *string          `json:"observacao"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	HonorarioID     uuid.UUID       `json:"honorario_id"`
	Valor           decimal.Decimal `json:"valor"`
	DataPagamento   string          `json:"data_pagamento"`
	TipoPagamentoID uint            `json:"tipo_pagamento_id"`
	Observacao      string          `json:"observacao,omitempty"`
	Honorario       *FeeResponse    `json:"honorario,omitempty"`
	TipoPagamento   *LookupResponse `json:"tipo_pagamento,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToPaymentResponse maps a domain payment to its API representation
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID,
		HonorarioID:     p.FeeID,
		Valor:           p.Amount,
		DataPagamento:   p.PaymentDate.Format(DateLayout),
		TipoPagamentoID: p.PaymentTypeID,
		Observacao:      p.Note,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Fee != nil {
		fee := ToFeeResponse(p.Fee)
		resp.Honorario = &fee
	}
	if p.PaymentType != nil {
		pt := ToPaymentTypeResponse(p.PaymentType)
		resp.TipoPagamento = &pt
	}
	return resp
}

// LookupRequest represents a request to create or rename a lookup row
type LookupRequest struct {
	Nome      string `json:"nome" binding:"required,min=1,max=100"`
	Descricao string `json:"descricao"`
}

// LookupResponse represents a status or payment type in API responses
type LookupResponse struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// ToStatusResponse maps a domain status to its API representation
func ToStatusResponse(s *billing.Status) LookupResponse {
	return LookupResponse{ID: s.ID, Nome: s.Name, Descricao: s.Description}
}

// ToPaymentTypeResponse maps a domain payment type to its API representation
func ToPaymentTypeResponse(t *billing.PaymentType) LookupResponse {
	return LookupResponse{ID: t.ID, Nome: t.Name, Descricao: t.Description}
}

package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Payment is a recorded remittance applied against a fee. It carries its
// own soft-delete lifecycle, fully decoupled from the fee's status:
// creating, deleting or restoring a payment never recomputes the fee.
type Payment struct {
	shared.OwnedEntity
	FeeID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentDate   time.Time       `gorm:"type:date;not null"`
	PaymentTypeID uint            `gorm:"not null;index"`
	Note          string          `gorm:"type:text"`

	// Eagerly attached on reads, never persisted from here.
	Fee         *Fee         `gorm:"-"`
	PaymentType *PaymentType `gorm:"-"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "pagamentos"
}

// NewPayment creates a payment against a fee. The payment date defaults to
// today when the zero value is passed. Fee and payment type are required;
// their existence is enforced by the store's FK constraints.
func NewPayment(ownerID, feeID uuid.UUID, amount decimal.Decimal, paymentDate time.Time, paymentTypeID uint, note string) (*Payment, error) {
	if feeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FEE", "Payment requires a fee")
	}
	if paymentTypeID == 0 {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Payment requires a payment type")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	return &Payment{
		OwnedEntity:   shared.NewOwnedEntity(ownerID),
		FeeID:         feeID,
		Amount:        amount,
		PaymentDate:   paymentDate,
		PaymentTypeID: paymentTypeID,
		Note:          note,
	}, nil
}

// SetAmount replaces the amount, keeping the positive-amount invariant
func (p *Payment) SetAmount(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	p.Amount = amount
	p.UpdatedAt = time.Now()
	return nil
}

// SetPaymentDate replaces the payment date
func (p *Payment) SetPaymentDate(paymentDate time.Time) error {
	if paymentDate.IsZero() {
		return shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date cannot be empty")
	}
	p.PaymentDate = paymentDate
	p.UpdatedAt = time.Now()
	return nil
}

// SetPaymentType replaces the payment type
func (p *Payment) SetPaymentType(paymentTypeID uint) error {
	if paymentTypeID == 0 {
		return shared.NewDomainError("INVALID_PAYMENT_TYPE", "Payment requires a payment type")
	}
	p.PaymentTypeID = paymentTypeID
	p.UpdatedAt = time.Now()
	return nil
}

// SetNote replaces the free-form note
func (p *Payment) SetNote(note string) {
	p.Note = note
	p.UpdatedAt = time.Now()
}

package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/partner"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Fee represents a billable invoice ("honorário") owed by a client.
// It is the aggregate root of the billing context: status transitions,
// reference-month defaulting and soft deletion all happen here or in the
// repository operating on it.
//
// The status id is a loosely-typed FK: only Pending/Paid/Overdue are
// meaningful to lifecycle logic, but other ids set explicitly are stored
// as-is. Payments never mutate the status as a side effect.
type Fee struct {
	shared.OwnedEntity
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StatusID       uint            `gorm:"not null;default:1;index"`
	DueDate        time.Time       `gorm:"type:date;not null;index"`
	ReferenceMonth string          `gorm:"type:varchar(7);not null;index"`
	Description    string          `gorm:"type:text"`

	// Reminder flags for the due-date notification thresholds. The core
	// lifecycle never touches them; they are preserved for the notifier.
	Notified             bool `gorm:"not null;default:false"`
	NotifiedFirstWarning bool `gorm:"not null;default:false"`
	NotifiedThirdDay     bool `gorm:"not null;default:false"`

	// Eagerly attached on reads, never persisted from here.
	Client *partner.Client `gorm:"-"`
	Status *Status         `gorm:"-"`
}

// TableName returns the table name for GORM
func (Fee) TableName() string {
	return "honorarios"
}

// NewFee creates a fee for a client. The status defaults to Pending when
// statusID is nil; an explicit id is stored without validation. An empty
// reference month defaults to the current year-month at call time.
func NewFee(ownerID, clientID uuid.UUID, amount decimal.Decimal, statusID *uint, dueDate time.Time, referenceMonth, description string, now time.Time) (*Fee, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Fee requires a client")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Fee requires a due date")
	}

	month, err := NormalizeReferenceMonth(referenceMonth, now)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if statusID != nil {
		status = *statusID
	}

	return &Fee{
		OwnedEntity:    shared.NewOwnedEntity(ownerID),
		ClientID:       clientID,
		Amount:         amount,
		StatusID:       status,
		DueDate:        dueDate,
		ReferenceMonth: month,
		Description:    description,
	}, nil
}

// SetAmount replaces the amount, keeping the positive-amount invariant
func (f *Fee) SetAmount(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	f.Amount = amount
	f.UpdatedAt = time.Now()
	return nil
}

// SetStatus stores any status id without validation (lenient by design)
func (f *Fee) SetStatus(statusID uint) {
	f.StatusID = statusID
	f.UpdatedAt = time.Now()
}

// SetDueDate replaces the due date
func (f *Fee) SetDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be empty")
	}
	f.DueDate = dueDate
	f.UpdatedAt = time.Now()
	return nil
}

// SetReferenceMonth replaces the reference month. An empty value re-defaults
// to the current year-month, so an explicit null on update never persists.
func (f *Fee) SetReferenceMonth(referenceMonth string, now time.Time) error {
	month, err := NormalizeReferenceMonth(referenceMonth, now)
	if err != nil {
		return err
	}
	f.ReferenceMonth = month
	f.UpdatedAt = time.Now()
	return nil
}

// SetDescription replaces the description
func (f *Fee) SetDescription(description string) {
	f.Description = description
	f.UpdatedAt = time.Now()
}

// IsPending reports whether the fee awaits payment and is not yet late
func (f *Fee) IsPending() bool {
	return f.StatusID == StatusPending
}

// IsPaid reports whether the fee has been settled
func (f *Fee) IsPaid() bool {
	return f.StatusID == StatusPaid
}

// IsOverdue reports whether the fee passed its due date unpaid
func (f *Fee) IsOverdue() bool {
	return f.StatusID == StatusOverdue
}

// IsOpen reports whether the fee still counts as outstanding
// (pending or overdue)
func (f *Fee) IsOpen() bool {
	return f.IsPending() || f.IsOverdue()
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	}
	return nil
}

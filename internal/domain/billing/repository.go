package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/shared"
)

// FeeFilter narrows fee list queries. Nil fields are not applied.
type FeeFilter struct {
	ClientID *uuid.UUID
	StatusID *uint
}

// FeeRepository defines persistence operations for fees. All operations
// except the lookup-table ones are scoped to an owner.
type FeeRepository interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Fee, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter FeeFilter, page shared.Page) ([]Fee, error)
	Save(ctx context.Context, fee *Fee) error
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	Restore(ctx context.Context, ownerID, id uuid.UUID) (*Fee, error)

	// MarkOverdue transitions every non-deleted Pending fee of the owner
	// whose due date lies strictly before today to Overdue, in a single
	// batch commit, and returns the number of rows mutated. Running it
	// again without intervening changes mutates nothing.
	MarkOverdue(ctx context.Context, ownerID uuid.UUID, today time.Time) (int64, error)

	// FindMostUrgent returns the owner's pending/overdue fees ordered by
	// ascending due date, with Client and Status attached.
	FindMostUrgent(ctx context.Context, ownerID uuid.UUID, limit int) ([]Fee, error)
}

// PaymentFilter narrows payment list queries. Nil fields are not applied.
type PaymentFilter struct {
	FeeID *uuid.UUID
}

// PaymentRepository defines persistence operations for payments. Payments
// support both soft deletion (with restore) and hard deletion.
type PaymentRepository interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Payment, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, filter PaymentFilter, page shared.Page) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	Restore(ctx context.Context, ownerID, id uuid.UUID) (*Payment, error)
	HardDelete(ctx context.Context, ownerID, id uuid.UUID) error
}

// StatusRepository defines persistence for the global status lookup table
type StatusRepository interface {
	FindByID(ctx context.Context, id uint) (*Status, error)
	FindAll(ctx context.Context) ([]Status, error)
	Save(ctx context.Context, status *Status) error
}

// PaymentTypeRepository defines persistence for the global payment type
// lookup table
type PaymentTypeRepository interface {
	FindByID(ctx context.Context, id uint) (*PaymentType, error)
	FindAll(ctx context.Context) ([]PaymentType, error)
	Save(ctx context.Context, paymentType *PaymentType) error
}

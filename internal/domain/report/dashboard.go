// Package report holds the read models backing the dashboard. Everything
// here is derived from the non-deleted rows of one owner and parameterized
// by "now"; nothing in this package ever mutates state.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyTotals carries the collected payment totals used for the
// month-over-month growth figure.
type MonthlyTotals struct {
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// PendingTotals aggregates the open (pending or overdue) fees of an owner.
type PendingTotals struct {
	Amount decimal.Decimal
	Count  int64
}

// DashboardRepository exposes the read-only aggregate queries the
// dashboard is built from. Implementations must exclude soft-deleted rows
// and scope every query to the owner.
type DashboardRepository interface {
	// CollectedInRange sums non-deleted payment amounts with a payment
	// date inside [from, to].
	CollectedInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	// ActiveClientCount counts distinct non-deleted clients holding at
	// least one non-deleted fee with a due date at or after the instant.
	ActiveClientCount(ctx context.Context, ownerID uuid.UUID, notBefore time.Time) (int64, error)

	// ActiveClientCountByMonth counts distinct non-deleted clients holding
	// at least one non-deleted fee in the given YYYY-MM reference month.
	ActiveClientCountByMonth(ctx context.Context, ownerID uuid.UUID, referenceMonth string) (int64, error)

	// NewClientCount counts non-deleted clients created inside [from, to].
	NewClientCount(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (int64, error)

	// PendingFeeTotals sums and counts non-deleted fees whose status is
	// Pending or Overdue.
	PendingFeeTotals(ctx context.Context, ownerID uuid.UUID) (PendingTotals, error)

	// RegisteredFeeCount counts all non-deleted fees of the owner.
	RegisteredFeeCount(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

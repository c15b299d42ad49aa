package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	appbilling "github.com/honoraria/backend/internal/application/billing"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// trailingMonths is the window of the revenue and clients series
const trailingMonths = 6

// recentFeeLimit caps the urgent-fees widget
const recentFeeLimit = 5

// monthLabel is the wire format of series bucket labels ("Jun/2024")
const monthLabel = "Jan/2006"

// DashboardService aggregates the owner's non-deleted rows into the
// dashboard read models. All methods are read-only and parameterized by
// now, so a request never mutates state.
type DashboardService struct {
	dashboardRepo report.DashboardRepository
	feeRepo       billing.FeeRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo report.DashboardRepository, feeRepo billing.FeeRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo, feeRepo: feeRepo}
}

// Stats computes the headline dashboard figures. Collected totals bucket
// by the payment date's calendar month, so the current month spans its
// full bounds and agrees with the Revenue series.
func (s *DashboardService) Stats(ctx context.Context, ownerID uuid.UUID, now time.Time) (*DashboardStatsResponse, error) {
	monthStart, monthEnd := monthRange(now, 0)
	prevStart, prevEnd := monthRange(now, -1)

	collected, err := s.dashboardRepo.CollectedInRange(ctx, ownerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	previous, err := s.dashboardRepo.CollectedInRange(ctx, ownerID, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	activeClients, err := s.dashboardRepo.ActiveClientCount(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}
	newClients, err := s.dashboardRepo.NewClientCount(ctx, ownerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	pending, err := s.dashboardRepo.PendingFeeTotals(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	registered, err := s.dashboardRepo.RegisteredFeeCount(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &DashboardStatsResponse{
		TotalRecebido:          collected.InexactFloat64(),
		CrescimentoMensal:      growthPercent(collected, previous),
		ClientesAtivos:         activeClients,
		NovosClientes:          newClients,
		HonorariosPendentes:    pending.Amount.InexactFloat64(),
		QtdHonorariosPendentes: pending.Count,
		HonorariosCadastrados:  registered,
	}, nil
}

// Revenue returns the trailing six months of collected totals, oldest
// month first
func (s *DashboardService) Revenue(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]RevenuePoint, error) {
	points := make([]RevenuePoint, 0, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		start, end := monthRange(now, -i)

		total, err := s.dashboardRepo.CollectedInRange(ctx, ownerID, start, end)
		if err != nil {
			return nil, err
		}
		points = append(points, RevenuePoint{
			Month: start.Format(monthLabel),
			Value: total.InexactFloat64(),
		})
	}
	return points, nil
}

// Clients returns the trailing six months of client activity, oldest
// month first. A client is active in a bucket when it holds a fee whose
// reference month equals the bucket.
func (s *DashboardService) Clients(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]ClientsPoint, error) {
	points := make([]ClientsPoint, 0, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		start, end := monthRange(now, -i)
		referenceMonth := billing.CurrentReferenceMonth(start)

		active, err := s.dashboardRepo.ActiveClientCountByMonth(ctx, ownerID, referenceMonth)
		if err != nil {
			return nil, err
		}
		created, err := s.dashboardRepo.NewClientCount(ctx, ownerID, start, end)
		if err != nil {
			return nil, err
		}
		points = append(points, ClientsPoint{
			Month:  start.Format(monthLabel),
			Active: active,
			New:    created,
		})
	}
	return points, nil
}

// RecentFees returns the owner's five most urgent open fees, earliest
// due date first, with client and status attached
func (s *DashboardService) RecentFees(ctx context.Context, ownerID uuid.UUID) ([]appbilling.FeeResponse, error) {
	fees, err := s.feeRepo.FindMostUrgent(ctx, ownerID, recentFeeLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]appbilling.FeeResponse, len(fees))
	for i := range fees {
		responses[i] = appbilling.ToFeeResponse(&fees[i])
	}
	return responses, nil
}

// growthPercent computes (current-previous)/previous*100 rounded to two
// decimals; a zero previous month yields zero rather than a division error.
func growthPercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// monthRange returns the inclusive bounds of the month offset months away
// from now
func monthRange(now time.Time, offset int) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

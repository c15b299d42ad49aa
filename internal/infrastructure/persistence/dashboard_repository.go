package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/report"
	"github.com/honoraria/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDashboardRepository implements report.DashboardRepository using GORM.
// Every query is a read-only aggregate over the owner's non-deleted rows.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// CollectedInRange sums non-deleted payment amounts inside [from, to]
func (r *GormDashboardRepository) CollectedInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_id = ? AND is_deleted = ? AND payment_date >= ? AND payment_date <= ?",
			ownerID, false, from, to).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ActiveClientCount counts distinct non-deleted clients holding at least
// one non-deleted fee due at or after the instant
func (r *GormDashboardRepository) ActiveClientCount(ctx context.Context, ownerID uuid.UUID, notBefore time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FeeModel{}).
		Joins("JOIN clientes ON clientes.id = honorarios.client_id AND clientes.is_deleted = ?", false).
		Where("honorarios.owner_id = ? AND honorarios.is_deleted = ? AND honorarios.due_date >= ?",
			ownerID, false, notBefore).
		Distinct("honorarios.client_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ActiveClientCountByMonth counts distinct non-deleted clients holding at
// least one non-deleted fee in the given YYYY-MM reference month
func (r *GormDashboardRepository) ActiveClientCountByMonth(ctx context.Context, ownerID uuid.UUID, referenceMonth string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FeeModel{}).
		Joins("JOIN clientes ON clientes.id = honorarios.client_id AND clientes.is_deleted = ?", false).
		Where("honorarios.owner_id = ? AND honorarios.is_deleted = ? AND honorarios.reference_month = ?",
			ownerID, false, referenceMonth).
		Distinct("honorarios.client_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NewClientCount counts non-deleted clients created inside [from, to]
func (r *GormDashboardRepository) NewClientCount(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("owner_id = ? AND is_deleted = ? AND creation_date >= ? AND creation_date <= ?",
			ownerID, false, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PendingFeeTotals sums and counts non-deleted fees whose status is
// pending or overdue
func (r *GormDashboardRepository) PendingFeeTotals(ctx context.Context, ownerID uuid.UUID) (report.PendingTotals, error) {
	var totals report.PendingTotals
	row := r.db.WithContext(ctx).
		Model(&models.FeeModel{}).
		Select("COALESCE(SUM(amount), 0), COUNT(*)").
		Where("owner_id = ? AND is_deleted = ? AND status_id IN ?",
			ownerID, false, []uint{billing.StatusPending, billing.StatusOverdue}).
		Row()
	if err := row.Scan(&totals.Amount, &totals.Count); err != nil {
		return report.PendingTotals{}, err
	}
	return totals, nil
}

// RegisteredFeeCount counts all non-deleted fees of the owner
func (r *GormDashboardRepository) RegisteredFeeCount(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FeeModel{}).
		Where("owner_id = ? AND is_deleted = ?", ownerID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormDashboardRepository implements DashboardRepository
var _ report.DashboardRepository = (*GormDashboardRepository)(nil)

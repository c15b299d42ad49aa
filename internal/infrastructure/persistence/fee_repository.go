package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/honoraria/backend/internal/infrastructure/persistence/models"
	"github.com/honoraria/backend/internal/infrastructure/persistence/owner"
	"gorm.io/gorm"
)

// GormFeeRepository implements billing.FeeRepository using GORM.
// All queries run through the owner scope.
type GormFeeRepository struct {
	db *owner.ScopedDB
}

// NewGormFeeRepository creates a new GormFeeRepository
func NewGormFeeRepository(db *gorm.DB) *GormFeeRepository {
	return &GormFeeRepository{db: owner.NewScopedDB(db)}
}

// FindByID finds a non-deleted fee by id within an owner, with Client and
// Status attached
func (r *GormFeeRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*billing.Fee, error) {
	var model models.FeeModel
	if err := r.db.WithOwner(ctx, ownerID).
		Preload("Client").Preload("Status").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists the owner's non-deleted fees matching the filter, ordered
// by ascending due date, with Client and Status attached
func (r *GormFeeRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter billing.FeeFilter, page shared.Page) ([]billing.Fee, error) {
	page = page.Normalize()

	query := r.db.WithOwner(ctx, ownerID).
		Preload("Client").Preload("Status").
		Where("is_deleted = ?", false)
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}

	var feeModels []models.FeeModel
	if err := query.
		Order("due_date ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&feeModels).Error; err != nil {
		return nil, err
	}

	fees := make([]billing.Fee, len(feeModels))
	for i, model := range feeModels {
		fees[i] = *model.ToDomain()
	}
	return fees, nil
}

// Save creates or updates a fee
func (r *GormFeeRepository) Save(ctx context.Context, fee *billing.Fee) error {
	model := models.FeeModelFromDomain(fee)
	return r.db.WithOwner(ctx, fee.OwnerID).Save(model).Error
}

// SoftDelete marks a non-deleted fee as deleted
func (r *GormFeeRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.FeeModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{"is_deleted": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Restore clears the deletion flag on a currently deleted fee
func (r *GormFeeRepository) Restore(ctx context.Context, ownerID, id uuid.UUID) (*billing.Fee, error) {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.FeeModel{}).
		Where("id = ? AND is_deleted = ?", id, true).
		Updates(map[string]interface{}{"is_deleted": false, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return r.FindByID(ctx, ownerID, id)
}

// MarkOverdue transitions the owner's pending fees with a due date before
// today to overdue in one batch UPDATE and returns the affected row count.
// Already overdue and paid fees are untouched, so the sweep is idempotent.
func (r *GormFeeRepository) MarkOverdue(ctx context.Context, ownerID uuid.UUID, today time.Time) (int64, error) {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.FeeModel{}).
		Where("is_deleted = ? AND status_id = ? AND due_date < ?",
			false, billing.StatusPending, today).
		Updates(map[string]interface{}{"status_id": billing.StatusOverdue, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindMostUrgent returns the owner's open fees ordered by ascending due
// date, with Client and Status attached
func (r *GormFeeRepository) FindMostUrgent(ctx context.Context, ownerID uuid.UUID, limit int) ([]billing.Fee, error) {
	var feeModels []models.FeeModel
	if err := r.db.WithOwner(ctx, ownerID).
		Preload("Client").Preload("Status").
		Where("is_deleted = ? AND status_id IN ?",
			false, []uint{billing.StatusPending, billing.StatusOverdue}).
		Order("due_date ASC").
		Limit(limit).
		Find(&feeModels).Error; err != nil {
		return nil, err
	}

	fees := make([]billing.Fee, len(feeModels))
	for i, model := range feeModels {
		fees[i] = *model.ToDomain()
	}
	return fees, nil
}

// Ensure GormFeeRepository implements FeeRepository
var _ billing.FeeRepository = (*GormFeeRepository)(nil)

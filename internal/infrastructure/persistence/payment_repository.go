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

// GormPaymentRepository implements billing.PaymentRepository using GORM.
// All queries run through the owner scope.
type GormPaymentRepository struct {
	db *owner.ScopedDB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: owner.NewScopedDB(db)}
}

// FindByID finds a non-deleted payment by id within an owner, with the fee
// (and its client) and the payment type attached
func (r *GormPaymentRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithOwner(ctx, ownerID).
		Preload("Fee").Preload("Fee.Client").Preload("PaymentType").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists the owner's non-deleted payments matching the filter,
// newest payment date first
func (r *GormPaymentRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter billing.PaymentFilter, page shared.Page) ([]billing.Payment, error) {
	page = page.Normalize()

	query := r.db.WithOwner(ctx, ownerID).
		Preload("Fee").Preload("Fee.Client").Preload("PaymentType").
		Where("is_deleted = ?", false)
	if filter.FeeID != nil {
		query = query.Where("fee_id = ?", *filter.FeeID)
	}

	var paymentModels []models.PaymentModel
	if err := query.
		Order("payment_date DESC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]billing.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithOwner(ctx, payment.OwnerID).Save(model).Error
}

// SoftDelete marks a non-deleted payment as deleted. The owning fee's
// status is never recomputed.
func (r *GormPaymentRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.PaymentModel{}).
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

// Restore clears the deletion flag on a currently deleted payment
func (r *GormPaymentRepository) Restore(ctx context.Context, ownerID, id uuid.UUID) (*billing.Payment, error) {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.PaymentModel{}).
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

// HardDelete removes a payment row permanently, regardless of its
// soft-delete state
func (r *GormPaymentRepository) HardDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithOwner(ctx, ownerID).
		Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)

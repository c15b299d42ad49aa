package persistence

import (
	"context"
	"errors"

	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/honoraria/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStatusRepository implements billing.StatusRepository using GORM.
// Status rows are global; no owner scoping applies.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GormStatusRepository
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// FindByID finds a status by id
func (r *GormStatusRepository) FindByID(ctx context.Context, id uint) (*billing.Status, error) {
	var model models.StatusModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists all statuses ordered by id
func (r *GormStatusRepository) FindAll(ctx context.Context) ([]billing.Status, error) {
	var statusModels []models.StatusModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&statusModels).Error; err != nil {
		return nil, err
	}

	statuses := make([]billing.Status, len(statusModels))
	for i, model := range statusModels {
		statuses[i] = *model.ToDomain()
	}
	return statuses, nil
}

// Save creates or updates a status
func (r *GormStatusRepository) Save(ctx context.Context, status *billing.Status) error {
	model := models.StatusModelFromDomain(status)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	status.ID = model.ID
	return nil
}

// GormPaymentTypeRepository implements billing.PaymentTypeRepository using
// GORM. Payment type rows are global; no owner scoping applies.
type GormPaymentTypeRepository struct {
	db *gorm.DB
}

// NewGormPaymentTypeRepository creates a new GormPaymentTypeRepository
func NewGormPaymentTypeRepository(db *gorm.DB) *GormPaymentTypeRepository {
	return &GormPaymentTypeRepository{db: db}
}

// FindByID finds a payment type by id
func (r *GormPaymentTypeRepository) FindByID(ctx context.Context, id uint) (*billing.PaymentType, error) {
	var model models.PaymentTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists all payment types ordered by id
func (r *GormPaymentTypeRepository) FindAll(ctx context.Context) ([]billing.PaymentType, error) {
	var typeModels []models.PaymentTypeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}

	types := make([]billing.PaymentType, len(typeModels))
	for i, model := range typeModels {
		types[i] = *model.ToDomain()
	}
	return types, nil
}

// Save creates or updates a payment type
func (r *GormPaymentTypeRepository) Save(ctx context.Context, paymentType *billing.PaymentType) error {
	model := models.PaymentTypeModelFromDomain(paymentType)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	paymentType.ID = model.ID
	return nil
}

// Ensure implementations satisfy the interfaces
var (
	_ billing.StatusRepository      = (*GormStatusRepository)(nil)
	_ billing.PaymentTypeRepository = (*GormPaymentTypeRepository)(nil)
)

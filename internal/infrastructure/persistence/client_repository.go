package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/partner"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/honoraria/backend/internal/infrastructure/persistence/models"
	"github.com/honoraria/backend/internal/infrastructure/persistence/owner"
	"gorm.io/gorm"
)

// GormClientRepository implements partner.ClientRepository using GORM.
// All queries run through the owner scope, so every statement is
// owner-filtered before any further conditions apply.
type GormClientRepository struct {
	db *owner.ScopedDB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: owner.NewScopedDB(db)}
}

// FindByID finds a non-deleted client by id within an owner
func (r *GormClientRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithOwner(ctx, ownerID).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists the owner's non-deleted clients with offset pagination
func (r *GormClientRepository) FindAll(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]partner.Client, error) {
	page = page.Normalize()

	var clientModels []models.ClientModel
	if err := r.db.WithOwner(ctx, ownerID).
		Where("is_deleted = ?", false).
		Order("created_at ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithOwner(ctx, client.OwnerID).Save(model).Error
}

// SoftDelete marks a non-deleted client as deleted. Deleting an already
// deleted client reports not found.
func (r *GormClientRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.ClientModel{}).
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

// Restore clears the deletion flag on a currently deleted client and
// returns the restored row. Restoring a live client reports not found.
func (r *GormClientRepository) Restore(ctx context.Context, ownerID, id uuid.UUID) (*partner.Client, error) {
	result := r.db.WithOwner(ctx, ownerID).
		Model(&models.ClientModel{}).
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

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)

package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedEntity extends BaseEntity with per-user ownership and soft deletion.
// Every Client/Fee/Payment row carries the owner's id; repositories must
// filter by it on every read and mutation.
type OwnedEntity struct {
	BaseEntity
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
}

// NewOwnedEntity creates a new owner-scoped entity
func NewOwnedEntity(ownerID uuid.UUID) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		OwnerID:    ownerID,
	}
}

// SoftDelete marks the entity as deleted. Deleted rows are excluded from
// default queries and remain addressable only through restore.
func (e *OwnedEntity) SoftDelete() {
	e.IsDeleted = true
	e.UpdatedAt = time.Now()
}

// Restore clears the deletion flag
func (e *OwnedEntity) Restore() {
	e.IsDeleted = false
	e.UpdatedAt = time.Now()
}

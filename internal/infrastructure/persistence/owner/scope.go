// Package owner provides per-owner database scoping for GORM.
//
// Every tenant-owned table carries an owner_id column. Repositories run
// their queries through a ScopedDB so each statement starts from an
// owner-filtered base; this package additionally registers query
// callbacks that inject the filter from the request context, so a query
// built outside the scoped path still cannot cross owners.
//
// Usage:
//
//	scoped := owner.NewScopedDB(gormDB)
//	scoped.WithOwner(ctx, ownerID).Find(&rows) // WHERE owner_id = ? is pre-applied
package owner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOwnerIDRequired is returned when owner_id is required but not found
var ErrOwnerIDRequired = errors.New("owner_id is required but not found in context")

type contextKey struct{}

// WithContext stores the acting owner id in the context. The auth
// middleware calls this once per request.
func WithContext(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, ownerID)
}

// FromContext returns the owner id stored in the context, or uuid.Nil.
func FromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(contextKey{}).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// Scope applies owner filtering to GORM queries
func Scope(ownerID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// ScopedDB wraps a GORM DB so repository queries start from an
// owner-filtered statement instead of repeating the predicate by hand.
type ScopedDB struct {
	db *gorm.DB
}

// NewScopedDB creates a ScopedDB over the given connection
func NewScopedDB(db *gorm.DB) *ScopedDB {
	return &ScopedDB{db: db}
}

// WithOwner returns a GORM DB scoped to the given owner id. A nil owner
// id poisons the statement so the query errors instead of running
// unscoped.
func (s *ScopedDB) WithOwner(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	if ownerID == uuid.Nil {
		db := s.db.WithContext(ctx)
		_ = db.AddError(ErrOwnerIDRequired)
		return db
	}
	return Scope(ownerID)(s.db.WithContext(ctx))
}

package owner

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lookup tables are global; the owner filter must never touch them
var globalTables = map[string]struct{}{
	"status":          {},
	"tipos_pagamento": {},
}

// Callback provides GORM callback hooks that inject the owner filter
// into queries built without one.
type Callback struct {
	column   string
	required bool
}

// NewCallback creates a new owner callback handler
func NewCallback(required bool) *Callback {
	return &Callback{column: "owner_id", required: required}
}

// Register registers owner callbacks with GORM
func (oc *Callback) Register(db *gorm.DB) {
	_ = db.Callback().Query().Before("gorm:query").Register("owner:before_query", oc.addOwnerFilter)
	_ = db.Callback().Update().Before("gorm:update").Register("owner:before_update", oc.addOwnerFilter)
	_ = db.Callback().Delete().Before("gorm:delete").Register("owner:before_delete", oc.addOwnerFilter)
	_ = db.Callback().Row().Before("gorm:row").Register("owner:before_row", oc.addOwnerFilter)

	// Create is not hooked: owner_id is set explicitly when entities are
	// constructed, never inferred at insert time.
}

func (oc *Callback) addOwnerFilter(db *gorm.DB) {
	if db.Statement.Context == nil || db.Statement.Unscoped {
		return
	}
	if _, global := globalTables[db.Statement.Table]; global {
		return
	}
	if oc.hasOwnerCondition(db) {
		return
	}

	ownerID := FromContext(db.Statement.Context)
	if ownerID == uuid.Nil {
		if oc.required {
			_ = db.AddError(ErrOwnerIDRequired)
		}
		return
	}

	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: clause.CurrentTable, Name: oc.column},
				Value:  ownerID,
			},
		},
	})
}

func (oc *Callback) hasOwnerCondition(db *gorm.DB) bool {
	if whereClause, ok := db.Statement.Clauses["WHERE"]; ok {
		if where, ok := whereClause.Expression.(clause.Where); ok {
			for _, expr := range where.Exprs {
				if oc.exprContainsOwner(expr) {
					return true
				}
			}
		}
	}

	sql := db.Statement.SQL.String()
	return sql != "" && strings.Contains(sql, oc.column)
}

func (oc *Callback) exprContainsOwner(expr clause.Expression) bool {
	switch e := expr.(type) {
	case clause.Eq:
		if col, ok := e.Column.(clause.Column); ok {
			return col.Name == oc.column
		}
	case clause.IN:
		if col, ok := e.Column.(clause.Column); ok {
			return col.Name == oc.column
		}
	case clause.AndConditions:
		for _, cond := range e.Exprs {
			if oc.exprContainsOwner(cond) {
				return true
			}
		}
	case clause.OrConditions:
		for _, cond := range e.Exprs {
			if oc.exprContainsOwner(cond) {
				return true
			}
		}
	case clause.Expr:
		if strings.Contains(e.SQL, oc.column) {
			return true
		}
	}
	return false
}

// EnableAutoFilter registers the owner filter callbacks on a GORM DB
// instance. With required false, queries without an owner in context run
// unscoped; repositories still filter explicitly.
func EnableAutoFilter(db *gorm.DB, required bool) {
	NewCallback(required).Register(db)
}

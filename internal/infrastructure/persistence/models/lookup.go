package models

import (
	"github.com/honoraria/backend/internal/domain/billing"
)

// StatusModel is the persistence model for the global status lookup table.
// Ids are small integers because fee lifecycle logic references them by
// literal value; the migration seed fixes 1/2/3.
type StatusModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StatusModel) TableName() string {
	return "status"
}

// ToDomain converts StatusModel to domain Status
func (m *StatusModel) ToDomain() *billing.Status {
	return &billing.Status{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// StatusModelFromDomain creates a StatusModel from a domain Status
func StatusModelFromDomain(s *billing.Status) *StatusModel {
	return &StatusModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

// PaymentTypeModel is the persistence model for the payment type lookup table
type PaymentTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentTypeModel) TableName() string {
	return "tipos_pagamento"
}

// ToDomain converts PaymentTypeModel to domain PaymentType
func (m *PaymentTypeModel) ToDomain() *billing.PaymentType {
	return &billing.PaymentType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// PaymentTypeModelFromDomain creates a PaymentTypeModel from a domain PaymentType
func PaymentTypeModelFromDomain(t *billing.PaymentType) *PaymentTypeModel {
	return &PaymentTypeModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}
}

package billing

import "github.com/honoraria/backend/internal/domain/shared"

// Well-known status ids. Lifecycle logic references these by literal value,
// so the migration seed must preserve this numbering. Ids outside this set
// are accepted on fees without validation (lenient by design).
const (
	StatusPending uint = 1
	StatusPaid    uint = 2
	StatusOverdue uint = 3
)

// Status is a global lookup row for the fee lifecycle. It is not scoped
// to an owner and is rarely mutated.
type Status struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Status) TableName() string {
	return "status"
}

// NewStatus creates a lookup status row
func NewStatus(name, description string) (*Status, error) {
	if err := validateLookupName(name); err != nil {
		return nil, err
	}
	return &Status{Name: name, Description: description}, nil
}

// Rename updates the status name
func (s *Status) Rename(name, description string) error {
	if err := validateLookupName(name); err != nil {
		return err
	}
	s.Name = name
	s.Description = description
	return nil
}

// PaymentType is a global lookup row describing how a payment was made
// (pix, transfer, cash, ...).
type PaymentType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentType) TableName() string {
	return "tipos_pagamento"
}

// NewPaymentType creates a lookup payment type row
func NewPaymentType(name, description string) (*PaymentType, error) {
	if err := validateLookupName(name); err != nil {
		return nil, err
	}
	return &PaymentType{Name: name, Description: description}, nil
}

// Rename updates the payment type name
func (t *PaymentType) Rename(name, description string) error {
	if err := validateLookupName(name); err != nil {
		return err
	}
	t.Name = name
	t.Description = description
	return nil
}

func validateLookupName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

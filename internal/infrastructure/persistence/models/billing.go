package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// FeeModel is the persistence model for billing.Fee
type FeeModel struct {
	OwnedModel
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StatusID       uint            `gorm:"not null;default:1;index"`
	DueDate        time.Time       `gorm:"type:date;not null;index"`
	ReferenceMonth string          `gorm:"type:varchar(7);not null;index"`
	Description    string          `gorm:"type:text"`

	Notified             bool `gorm:"not null;default:false"`
	NotifiedFirstWarning bool `gorm:"not null;default:false"`
	NotifiedThirdDay     bool `gorm:"not null;default:false"`

	Client *ClientModel `gorm:"foreignKey:ClientID"`
	Status *StatusModel `gorm:"foreignKey:StatusID"`
}

// TableName returns the table name for GORM
func (FeeModel) TableName() string {
	return "honorarios"
}

// ToDomain converts FeeModel to domain Fee, carrying preloaded
// associations when present
func (m *FeeModel) ToDomain() *billing.Fee {
	fee := &billing.Fee{
		OwnedEntity:          m.OwnedModel.ToDomain(),
		ClientID:             m.ClientID,
		Amount:               m.Amount,
		StatusID:             m.StatusID,
		DueDate:              m.DueDate,
		ReferenceMonth:       m.ReferenceMonth,
		Description:          m.Description,
		Notified:             m.Notified,
		NotifiedFirstWarning: m.NotifiedFirstWarning,
		NotifiedThirdDay:     m.NotifiedThirdDay,
	}
	if m.Client != nil {
		fee.Client = m.Client.ToDomain()
	}
	if m.Status != nil {
		fee.Status = m.Status.ToDomain()
	}
	return fee
}

// FeeModelFromDomain creates a FeeModel from a domain Fee. Associations
// are not mapped back; they are read-only attachments.
func FeeModelFromDomain(f *billing.Fee) *FeeModel {
	m := &FeeModel{
		ClientID:             f.ClientID,
		Amount:               f.Amount,
		StatusID:             f.StatusID,
		DueDate:              f.DueDate,
		ReferenceMonth:       f.ReferenceMonth,
		Description:          f.Description,
		Notified:             f.Notified,
		NotifiedFirstWarning: f.NotifiedFirstWarning,
		NotifiedThirdDay:     f.NotifiedThirdDay,
	}
	m.FromDomainOwnedEntity(f.OwnedEntity)
	return m
}

// PaymentModel is the persistence model for billing.Payment
type PaymentModel struct {
	OwnedModel
	FeeID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index"`
	PaymentTypeID uint            `gorm:"not null;index"`
	Note          string          `gorm:"type:text"`

	Fee         *FeeModel         `gorm:"foreignKey:FeeID"`
	PaymentType *PaymentTypeModel `gorm:"foreignKey:PaymentTypeID"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "pagamentos"
}

// ToDomain converts PaymentModel to domain Payment, carrying preloaded
// associations when present
func (m *PaymentModel) ToDomain() *billing.Payment {
	payment := &billing.Payment{
		OwnedEntity:   m.OwnedModel.ToDomain(),
		FeeID:         m.FeeID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		PaymentTypeID: m.PaymentTypeID,
		Note:          m.Note,
	}
	if m.Fee != nil {
		payment.Fee = m.Fee.ToDomain()
	}
	if m.PaymentType != nil {
		payment.PaymentType = m.PaymentType.ToDomain()
	}
	return payment
}

// PaymentModelFromDomain creates a PaymentModel from a domain Payment
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{
		FeeID:         p.FeeID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentTypeID: p.PaymentTypeID,
		Note:          p.Note,
	}
	m.FromDomainOwnedEntity(p.OwnedEntity)
	return m
}

package models

import (
	"time"

	"github.com/honoraria/backend/internal/domain/partner"
)

// ClientModel is the persistence model for partner.Client
type ClientModel struct {
	OwnedModel
	Name         string    `gorm:"type:varchar(200);not null"`
	Email        string    `gorm:"type:varchar(200);index"`
	Phone        string    `gorm:"type:varchar(50)"`
	CreationDate time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clientes"
}

// ToDomain converts ClientModel to domain Client
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		OwnedEntity:  m.OwnedModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		CreationDate: m.CreationDate,
	}
}

// ClientModelFromDomain creates a ClientModel from a domain Client
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		CreationDate: c.CreationDate,
	}
	m.FromDomainOwnedEntity(c.OwnedEntity)
	return m
}

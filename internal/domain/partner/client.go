package partner

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/shared"
)

// Client represents a billing client in the partner context.
// It is the aggregate root for client-related operations and owns
// zero or more fees.
type Client struct {
	shared.OwnedEntity
	Name         string    `gorm:"type:varchar(200);not null"`
	Email        string    `gorm:"type:varchar(200);index"`
	Phone        string    `gorm:"type:varchar(50)"`
	CreationDate time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clientes"
}

// NewClient creates a new client with required fields. The creation date
// is date-only and defaults to today when the zero value is passed.
func NewClient(ownerID uuid.UUID, name, email, phone string, creationDate time.Time) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}
	if creationDate.IsZero() {
		creationDate = time.Now()
	}

	return &Client{
		OwnedEntity:  shared.NewOwnedEntity(ownerID),
		Name:         name,
		Email:        email,
		Phone:        phone,
		CreationDate: truncateToDate(creationDate),
	}, nil
}

// Update applies the provided basic information
func (c *Client) Update(name, email, phone string) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.UpdatedAt = time.Now()

	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validateClientName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

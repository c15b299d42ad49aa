package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/partner"
)

// DateLayout is the wire format for date-only fields
const DateLayout = "2006-01-02"

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Nome        string `json:"nome" binding:"required,min=1,max=200"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Telefone    string `json:"telefone" binding:"max=50"`
	DataCriacao string `json:"data_criacao" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateClientRequest represents a partial update of a client. Absent
// fields keep their stored value.
type UpdateClientRequest struct {
	Nome     *string `json:"nome" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,email,max=200"`
	Telefone *string `json:"telefone" binding:"omitempty,max=50"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email,omitempty"`
	Telefone    string    `json:"telefone,omitempty"`
	DataCriacao string    `json:"data_criacao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToClientResponse maps a domain client to its API representation
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Nome:        c.Name,
		Email:       c.Email,
		Telefone:    c.Phone,
		DataCriacao: c.CreationDate.Format(DateLayout),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

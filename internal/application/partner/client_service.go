package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/partner"
	"github.com/honoraria/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client for the owner
func (s *ClientService) Create(ctx context.Context, ownerID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	var creationDate time.Time
	if req.DataCriacao != "" {
		parsed, err := time.Parse(DateLayout, req.DataCriacao)
		if err != nil {
			return nil, shared.NewValidationError("data_criacao must be a YYYY-MM-DD date")
		}
		creationDate = parsed
	}

	client, err := partner.NewClient(ownerID, req.Nome, req.Email, req.Telefone, creationDate)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves one of the owner's clients
func (s *ClientService) GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves the owner's clients with offset pagination
func (s *ClientService) List(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, nil
}

// Update applies a partial update to a client. Absent fields keep their
// stored value.
func (s *ClientService) Update(ctx context.Context, ownerID, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	name := client.Name
	if req.Nome != nil {
		name = *req.Nome
	}
	email := client.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := client.Phone
	if req.Telefone != nil {
		phone = *req.Telefone
	}

	if err := client.Update(name, email, phone); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete soft-deletes a client. Deleting an already deleted client
// reports not found.
func (s *ClientService) Delete(ctx context.Context, ownerID, clientID uuid.UUID) error {
	return s.clientRepo.SoftDelete(ctx, ownerID, clientID)
}

// Restore brings a soft-deleted client back
func (s *ClientService) Restore(ctx context.Context, ownerID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.Restore(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

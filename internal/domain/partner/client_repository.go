package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/shared"
)

// ClientRepository defines persistence operations for clients.
// Every operation is scoped to an owner; rows belonging to other owners
// must be invisible even when their ids are known.
type ClientRepository interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	Restore(ctx context.Context, ownerID, id uuid.UUID) (*Client, error)
}

package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/partner"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustClient(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *partner.Client {
	t.Helper()
	client, err := partner.NewClient(ownerID, name, "", "", time.Time{})
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Save(context.Background(), client))
	return client
}

func TestClientRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	client, err := partner.NewClient(ownerID, "Escritorio Silva", "silva@example.com", "111", time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, client))

	found, err := repo.FindByID(ctx, ownerID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
	assert.Equal(t, "Escritorio Silva", found.Name)
	assert.Equal(t, "silva@example.com", found.Email)
	assert.Equal(t, ownerID, found.OwnerID)
}

func TestClientRepository_OwnerIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	ownerA := uuid.New()
	ownerB := uuid.New()
	clientA := mustClient(t, db, ownerA, "Cliente A")
	mustClient(t, db, ownerB, "Cliente B")

	t.Run("get across owners reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, ownerB, clientA.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("list returns only the owner's rows", func(t *testing.T) {
		clients, err := repo.FindAll(ctx, ownerA, shared.Page{})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "Cliente A", clients[0].Name)
	})

	t.Run("delete across owners reports not found", func(t *testing.T) {
		err := repo.SoftDelete(ctx, ownerB, clientA.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestClientRepository_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	for i := 0; i < 5; i++ {
		mustClient(t, db, ownerID, fmt.Sprintf("Cliente %02d", i))
	}

	t.Run("applies skip and limit", func(t *testing.T) {
		clients, err := repo.FindAll(ctx, ownerID, shared.Page{Skip: 2, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, clients, 2)
	})

	t.Run("caps oversized limit", func(t *testing.T) {
		clients, err := repo.FindAll(ctx, ownerID, shared.Page{Limit: 100000})
		require.NoError(t, err)
		assert.Len(t, clients, 5)
	})
}

func TestClientRepository_SoftDeleteAndRestore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	client := mustClient(t, db, ownerID, "Cliente")

	t.Run("soft delete hides the row", func(t *testing.T) {
		require.NoError(t, repo.SoftDelete(ctx, ownerID, client.ID))

		_, err := repo.FindByID(ctx, ownerID, client.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		clients, err := repo.FindAll(ctx, ownerID, shared.Page{})
		require.NoError(t, err)
		assert.Empty(t, clients)
	})

	t.Run("second soft delete reports not found", func(t *testing.T) {
		err := repo.SoftDelete(ctx, ownerID, client.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("restore brings the row back", func(t *testing.T) {
		restored, err := repo.Restore(ctx, ownerID, client.ID)
		require.NoError(t, err)
		assert.False(t, restored.IsDeleted)

		found, err := repo.FindByID(ctx, ownerID, client.ID)
		require.NoError(t, err)
		assert.Equal(t, client.ID, found.ID)
	})

	t.Run("restore on a live row reports not found", func(t *testing.T) {
		_, err := repo.Restore(ctx, ownerID, client.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

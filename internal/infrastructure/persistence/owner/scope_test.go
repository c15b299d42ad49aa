package owner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ownedRow struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string
}

func (ownedRow) TableName() string { return "owned_rows" }

func setupOwnerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ownedRow{}))
	return db
}

func TestContextRoundTrip(t *testing.T) {
	ownerID := uuid.New()
	ctx := WithContext(context.Background(), ownerID)

	assert.Equal(t, ownerID, FromContext(ctx))
	assert.Equal(t, uuid.Nil, FromContext(context.Background()))
}

func TestScopedDB_WithOwner(t *testing.T) {
	db := setupOwnerTestDB(t)
	ownerA := uuid.New()
	ownerB := uuid.New()

	require.NoError(t, db.Create(&ownedRow{ID: uuid.New(), OwnerID: ownerA, Name: "a"}).Error)
	require.NoError(t, db.Create(&ownedRow{ID: uuid.New(), OwnerID: ownerB, Name: "b"}).Error)

	scoped := NewScopedDB(db)

	t.Run("filters by the given owner", func(t *testing.T) {
		var rows []ownedRow
		require.NoError(t, scoped.WithOwner(context.Background(), ownerA).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, "a", rows[0].Name)
	})

	t.Run("composes with further conditions", func(t *testing.T) {
		var rows []ownedRow
		require.NoError(t, scoped.WithOwner(context.Background(), ownerB).
			Where("name = ?", "b").Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, "b", rows[0].Name)
	})

	t.Run("nil owner id poisons the statement", func(t *testing.T) {
		var rows []ownedRow
		err := scoped.WithOwner(context.Background(), uuid.Nil).Find(&rows).Error
		assert.ErrorIs(t, err, ErrOwnerIDRequired)
	})
}

func TestCallback_InjectsOwnerFilter(t *testing.T) {
	db := setupOwnerTestDB(t)
	EnableAutoFilter(db, false)

	ownerA := uuid.New()
	ownerB := uuid.New()
	require.NoError(t, db.Create(&ownedRow{ID: uuid.New(), OwnerID: ownerA, Name: "a"}).Error)
	require.NoError(t, db.Create(&ownedRow{ID: uuid.New(), OwnerID: ownerB, Name: "b"}).Error)

	t.Run("query without explicit filter is scoped from context", func(t *testing.T) {
		ctx := WithContext(context.Background(), ownerA)
		var rows []ownedRow
		require.NoError(t, db.WithContext(ctx).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, "a", rows[0].Name)
	})

	t.Run("query with explicit filter is left alone", func(t *testing.T) {
		ctx := WithContext(context.Background(), ownerA)
		var rows []ownedRow
		require.NoError(t, db.WithContext(ctx).Where("owner_id = ?", ownerB).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, "b", rows[0].Name)
	})

	t.Run("no owner in context runs unscoped when not required", func(t *testing.T) {
		var rows []ownedRow
		require.NoError(t, db.Find(&rows).Error)
		assert.Len(t, rows, 2)
	})
}

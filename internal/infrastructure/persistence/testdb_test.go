package persistence

import (
	"testing"

	"github.com/honoraria/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.StatusModel{},
		&models.PaymentTypeModel{},
		&models.ClientModel{},
		&models.FeeModel{},
		&models.PaymentModel{},
	)
	require.NoError(t, err)

	seedLookups(t, db)
	return db
}

func seedLookups(t *testing.T, db *gorm.DB) {
	t.Helper()

	statuses := []models.StatusModel{
		{ID: 1, Name: "Pendente", Description: "Aguardando pagamento"},
		{ID: 2, Name: "Pago", Description: "Pagamento confirmado"},
		{ID: 3, Name: "Atrasado", Description: "Vencido sem pagamento"},
	}
	require.NoError(t, db.Create(&statuses).Error)

	types := []models.PaymentTypeModel{
		{ID: 1, Name: "Pix"},
		{ID: 2, Name: "Transferência"},
		{ID: 3, Name: "Dinheiro"},
	}
	require.NoError(t, db.Create(&types).Error)
}

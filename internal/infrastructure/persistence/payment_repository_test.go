package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustPayment(t *testing.T, db *gorm.DB, ownerID, feeID uuid.UUID, amount decimal.Decimal, date time.Time) *billing.Payment {
	t.Helper()
	payment, err := billing.NewPayment(ownerID, feeID, amount, date, 1, "")
	require.NoError(t, err)
	require.NoError(t, NewGormPaymentRepository(db).Save(context.Background(), payment))
	return payment
}

func TestPaymentRepository_FindWithAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	client := mustClient(t, db, ownerID, "Cliente Pagador")
	fee := mustFee(t, db, ownerID, client.ID, billing.StatusPending, time.Now().AddDate(0, 0, 10))
	payment := mustPayment(t, db, ownerID, fee.ID, decimal.NewFromInt(50), time.Now())

	found, err := repo.FindByID(ctx, ownerID, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Fee)
	require.NotNil(t, found.Fee.Client)
	require.NotNil(t, found.PaymentType)
	assert.Equal(t, "Cliente Pagador", found.Fee.Client.Name)
	assert.Equal(t, "Pix", found.PaymentType.Name)
}

func TestPaymentRepository_FindAllFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	client := mustClient(t, db, ownerID, "Cliente")
	feeA := mustFee(t, db, ownerID, client.ID, billing.StatusPending, time.Now().AddDate(0, 0, 5))
	feeB := mustFee(t, db, ownerID, client.ID, billing.StatusPending, time.Now().AddDate(0, 0, 6))

	mustPayment(t, db, ownerID, feeA.ID, decimal.NewFromInt(10), time.Now())
	mustPayment(t, db, ownerID, feeA.ID, decimal.NewFromInt(20), time.Now())
	mustPayment(t, db, ownerID, feeB.ID, decimal.NewFromInt(30), time.Now())

	payments, err := repo.FindAll(ctx, ownerID, billing.PaymentFilter{FeeID: &feeA.ID}, shared.Page{})
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	payments, err = repo.FindAll(ctx, ownerID, billing.PaymentFilter{}, shared.Page{})
	require.NoError(t, err)
	assert.Len(t, payments, 3)
}

func TestPaymentRepository_DeleteNeverTouchesFee(t *testing.T) {
	db := setupTestDB(t)
	paymentRepo := NewGormPaymentRepository(db)
	feeRepo := NewGormFeeRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	client := mustClient(t, db, ownerID, "Cliente")

	// a paid fee whose only payment gets soft-deleted keeps status 2
	fee := mustFee(t, db, ownerID, client.ID, billing.StatusPaid, time.Now().AddDate(0, 0, -1))
	payment := mustPayment(t, db, ownerID, fee.ID, decimal.NewFromInt(100), time.Now())

	require.NoError(t, paymentRepo.SoftDelete(ctx, ownerID, payment.ID))

	found, err := feeRepo.FindByID(ctx, ownerID, fee.ID)
	require.NoError(t, err)
	assert.True(t, found.IsPaid())

	t.Run("restore leaves fee untouched too", func(t *testing.T) {
		_, err := paymentRepo.Restore(ctx, ownerID, payment.ID)
		require.NoError(t, err)

		found, err := feeRepo.FindByID(ctx, ownerID, fee.ID)
		require.NoError(t, err)
		assert.True(t, found.IsPaid())
	})
}

func TestPaymentRepository_SoftAndHardDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	client := mustClient(t, db, ownerID, "Cliente")
	fee := mustFee(t, db, ownerID, client.ID, billing.StatusPending, time.Now().AddDate(0, 0, 5))

	t.Run("soft delete and restore round trip", func(t *testing.T) {
		payment := mustPayment(t, db, ownerID, fee.ID, decimal.NewFromInt(10), time.Now())

		require.NoError(t, repo.SoftDelete(ctx, ownerID, payment.ID))
		_, err := repo.FindByID(ctx, ownerID, payment.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		restored, err := repo.Restore(ctx, ownerID, payment.ID)
		require.NoError(t, err)
		assert.False(t, restored.IsDeleted)
	})

	t.Run("hard delete removes the row permanently", func(t *testing.T) {
		payment := mustPayment(t, db, ownerID, fee.ID, decimal.NewFromInt(10), time.Now())

		require.NoError(t, repo.HardDelete(ctx, ownerID, payment.ID))
		_, err := repo.FindByID(ctx, ownerID, payment.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = repo.Restore(ctx, ownerID, payment.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("hard delete across owners reports not found", func(t *testing.T) {
		payment := mustPayment(t, db, ownerID, fee.ID, decimal.NewFromInt(10), time.Now())
		err := repo.HardDelete(ctx, uuid.New(), payment.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	ownerID := uuid.New()
	feeID := uuid.New()
	paymentDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("creates payment successfully", func(t *testing.T) {
		payment, err := NewPayment(ownerID, feeID, decimal.NewFromFloat(750.25), paymentDate, 1, "primeira parcela")

		require.NoError(t, err)
		assert.NotNil(t, payment)
		assert.Equal(t, ownerID, payment.OwnerID)
		assert.Equal(t, feeID, payment.FeeID)
		assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(750.25)))
		assert.Equal(t, paymentDate, payment.PaymentDate)
		assert.Equal(t, uint(1), payment.PaymentTypeID)
		assert.Equal(t, "primeira parcela", payment.Note)
		assert.False(t, payment.IsDeleted)
	})

	t.Run("defaults payment date to now", func(t *testing.T) {
		payment, err := NewPayment(ownerID, feeID, decimal.NewFromInt(10), time.Time{}, 1, "")

		require.NoError(t, err)
		assert.False(t, payment.PaymentDate.IsZero())
	})

	t.Run("rejects missing fee", func(t *testing.T) {
		payment, err := NewPayment(ownerID, uuid.Nil, decimal.NewFromInt(10), paymentDate, 1, "")

		assert.Error(t, err)
		assert.Nil(t, payment)
	})

	t.Run("rejects missing payment type", func(t *testing.T) {
		payment, err := NewPayment(ownerID, feeID, decimal.NewFromInt(10), paymentDate, 0, "")

		assert.Error(t, err)
		assert.Nil(t, payment)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := NewPayment(ownerID, feeID, decimal.Zero, paymentDate, 1, "")
		assert.Error(t, err)

		_, err = NewPayment(ownerID, feeID, decimal.NewFromInt(-1), paymentDate, 1, "")
		assert.Error(t, err)
	})
}

func TestPaymentSetters(t *testing.T) {
	ownerID := uuid.New()
	payment, _ := NewPayment(ownerID, uuid.New(), decimal.NewFromInt(100), time.Now(), 1, "")

	t.Run("set amount keeps invariant", func(t *testing.T) {
		require.NoError(t, payment.SetAmount(decimal.NewFromFloat(0.01)))
		assert.Error(t, payment.SetAmount(decimal.Zero))
		assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(0.01)))
	})

	t.Run("set payment date rejects zero value", func(t *testing.T) {
		assert.Error(t, payment.SetPaymentDate(time.Time{}))
	})

	t.Run("set payment type rejects zero id", func(t *testing.T) {
		assert.Error(t, payment.SetPaymentType(0))
		require.NoError(t, payment.SetPaymentType(2))
		assert.Equal(t, uint(2), payment.PaymentTypeID)
	})
}

func TestPaymentSoftDeleteAndRestore(t *testing.T) {
	payment, _ := NewPayment(uuid.New(), uuid.New(), decimal.NewFromInt(10), time.Now(), 1, "")

	payment.SoftDelete()
	assert.True(t, payment.IsDeleted)

	payment.Restore()
	assert.False(t, payment.IsDeleted)
}

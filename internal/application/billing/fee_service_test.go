package billing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/billing"
	"github.com/honoraria/backend/internal/domain/partner"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFeeRepository is a mock implementation of billing.FeeRepository
type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*billing.Fee, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Fee), args.Error(1)
}

func (m *MockFeeRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter billing.FeeFilter, page shared.Page) ([]billing.Fee, error) {
	args := m.Called(ctx, ownerID, filter, page)
	return args.Get(0).([]billing.Fee), args.Error(1)
}

func (m *MockFeeRepository) Save(ctx context.Context, fee *billing.Fee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockFeeRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockFeeRepository) Restore(ctx context.Context, ownerID, id uuid.UUID) (*billing.Fee, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Fee), args.Error(1)
}

func (m *MockFeeRepository) MarkOverdue(ctx context.Context, ownerID uuid.UUID, today time.Time) (int64, error) {
	args := m.Called(ctx, ownerID, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeeRepository) FindMostUrgent(ctx context.Context, ownerID uuid.UUID, limit int) ([]billing.Fee, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]billing.Fee), args.Error(1)
}

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]partner.Client, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockClientRepository) Restore(ctx context.Context, ownerID, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func mustTestClient(t *testing.T, ownerID uuid.UUID) *partner.Client {
	t.Helper()
	client, err := partner.NewClient(ownerID, "Cliente Teste", "", "", time.Time{})
	require.NoError(t, err)
	return client
}

func mustTestFee(t *testing.T, ownerID, clientID uuid.UUID) *billing.Fee {
	t.Helper()
	fee, err := billing.NewFee(ownerID, clientID, decimal.NewFromFloat(500),
		nil, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), "", "", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return fee
}

func TestFeeService_Create(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("defaults status and reference month", func(t *testing.T) {
		client := mustTestClient(t, ownerID)
		feeRepo := new(MockFeeRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", ctx, ownerID, client.ID).Return(client, nil)

		feeRepo.On("Save", ctx, mock.AnythingOfType("*billing.Fee")).
			Run(func(args mock.Arguments) {
				saved := args.Get(1).(*billing.Fee)
				feeRepo.On("FindByID", ctx, ownerID, saved.ID).Return(saved, nil)
			}).
			Return(nil)

		service := NewFeeService(feeRepo, clientRepo)
		resp, err := service.Create(ctx, ownerID, CreateFeeRequest{
			ClienteID:      client.ID,
			Valor:          decimal.NewFromFloat(1500.50),
			DataVencimento: "2024-07-10",
		})

		require.NoError(t, err)
		assert.Equal(t, billing.StatusPending, resp.StatusID)
		assert.Equal(t, time.Now().Format("2006-01"), resp.MesReferencia)
		assert.Equal(t, "2024-07-10", resp.DataVencimento)
	})

	t.Run("rejects unknown client without saving", func(t *testing.T) {
		feeRepo := new(MockFeeRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", ctx, ownerID, mock.Anything).Return(nil, shared.ErrNotFound)

		service := NewFeeService(feeRepo, clientRepo)
		_, err := service.Create(ctx, ownerID, CreateFeeRequest{
			ClienteID:      uuid.New(),
			Valor:          decimal.NewFromFloat(100),
			DataVencimento: "2024-07-10",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		feeRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		client := mustTestClient(t, ownerID)
		feeRepo := new(MockFeeRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", ctx, ownerID, client.ID).Return(client, nil)

		service := NewFeeService(feeRepo, clientRepo)
		_, err := service.Create(ctx, ownerID, CreateFeeRequest{
			ClienteID:      client.ID,
			Valor:          decimal.Zero,
			DataVencimento: "2024-07-10",
		})

		assert.Error(t, err)
		feeRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestFeeService_Update(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	newService := func(fee *billing.Fee) (*FeeService, *MockFeeRepository, *MockClientRepository) {
		feeRepo := new(MockFeeRepository)
		clientRepo := new(MockClientRepository)
		feeRepo.On("FindByID", ctx, ownerID, fee.ID).Return(fee, nil)
		feeRepo.On("Save", ctx, fee).Return(nil)
		return NewFeeService(feeRepo, clientRepo), feeRepo, clientRepo
	}

	t.Run("absent mes_referencia keeps the stored month", func(t *testing.T) {
		fee := mustTestFee(t, ownerID, uuid.New())
		require.NoError(t, fee.SetReferenceMonth("2024-03", time.Now()))
		service, _, _ := newService(fee)

		newAmount := decimal.NewFromFloat(750)
		resp, err := service.Update(ctx, ownerID, fee.ID, UpdateFeeRequest{Valor: &newAmount})

		require.NoError(t, err)
		assert.Equal(t, "2024-03", resp.MesReferencia)
		assert.True(t, resp.Valor.Equal(newAmount))
	})

	t.Run("null mes_referencia re-defaults to current month", func(t *testing.T) {
		fee := mustTestFee(t, ownerID, uuid.New())
		require.NoError(t, fee.SetReferenceMonth("2023-01", time.Now()))
		service, _, _ := newService(fee)

		var req UpdateFeeRequest
		require.NoError(t, json.Unmarshal([]byte(`{"mes_referencia": null}`), &req))
		require.True(t, req.MesReferencia.Set)
		require.Nil(t, req.MesReferencia.Value)

		resp, err := service.Update(ctx, ownerID, fee.ID, req)
		require.NoError(t, err)
		assert.Equal(t, time.Now().Format("2006-01"), resp.MesReferencia)
	})

	t.Run("explicit mes_referencia is validated", func(t *testing.T) {
		fee := mustTestFee(t, ownerID, uuid.New())
		service, _, _ := newService(fee)

		bad := "2024-13"
		_, err := service.Update(ctx, ownerID, fee.ID, UpdateFeeRequest{
			MesReferencia: OptionalString{Set: true, Value: &bad},
		})
		assert.Error(t, err)
	})

	t.Run("status id is stored without validation", func(t *testing.T) {
		fee := mustTestFee(t, ownerID, uuid.New())
		service, _, _ := newService(fee)

		status := uint(99)
		resp, err := service.Update(ctx, ownerID, fee.ID, UpdateFeeRequest{StatusID: &status})
		require.NoError(t, err)
		assert.Equal(t, uint(99), resp.StatusID)
	})

	t.Run("reassigning to an unknown client fails", func(t *testing.T) {
		fee := mustTestFee(t, ownerID, uuid.New())
		service, _, clientRepo := newService(fee)
		clientRepo.On("FindByID", ctx, ownerID, mock.Anything).Return(nil, shared.ErrNotFound)

		other := uuid.New()
		_, err := service.Update(ctx, ownerID, fee.ID, UpdateFeeRequest{ClienteID: &other})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestFeeService_CheckOverdue(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("reports the sweep count", func(t *testing.T) {
		now := time.Date(2024, 7, 15, 14, 30, 0, 0, time.UTC)
		today := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

		feeRepo := new(MockFeeRepository)
		feeRepo.On("MarkOverdue", ctx, ownerID, today).Return(int64(3), nil)
		service := NewFeeService(feeRepo, new(MockClientRepository))

		resp, err := service.CheckOverdue(ctx, ownerID, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.UpdatedCount)
		assert.Equal(t, "3 honorário(s) marcado(s) como atrasado(s)", resp.Message)
	})

	t.Run("a second sweep reports zero", func(t *testing.T) {
		feeRepo := new(MockFeeRepository)
		feeRepo.On("MarkOverdue", ctx, ownerID, mock.Anything).Return(int64(0), nil)
		service := NewFeeService(feeRepo, new(MockClientRepository))

		resp, err := service.CheckOverdue(ctx, ownerID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.UpdatedCount)
		assert.Equal(t, "0 honorário(s) marcado(s) como atrasado(s)", resp.Message)
	})
}

func TestFeeService_DeleteAndRestore(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("delete delegates to the repository", func(t *testing.T) {
		feeRepo := new(MockFeeRepository)
		id := uuid.New()
		feeRepo.On("SoftDelete", ctx, ownerID, id).Return(nil)
		service := NewFeeService(feeRepo, new(MockClientRepository))

		assert.NoError(t, service.Delete(ctx, ownerID, id))
		feeRepo.AssertExpectations(t)
	})

	t.Run("restore returns the restored fee", func(t *testing.T) {
		fee := mustTestFee(t, ownerID, uuid.New())
		feeRepo := new(MockFeeRepository)
		feeRepo.On("Restore", ctx, ownerID, fee.ID).Return(fee, nil)
		service := NewFeeService(feeRepo, new(MockClientRepository))

		resp, err := service.Restore(ctx, ownerID, fee.ID)
		require.NoError(t, err)
		assert.Equal(t, fee.ID, resp.ID)
	})
}

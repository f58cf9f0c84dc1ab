package stock

import (
	"context"
	"testing"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStockRecordRepository is a mock implementation of StockRecordRepository
type MockStockRecordRepository struct {
	mock.Mock
}

func (m *MockStockRecordRepository) FindByOwner(ctx context.Context, ref catalog.SellableRef) (*stock.StockRecord, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockRecord), args.Error(1)
}

func (m *MockStockRecordRepository) Save(ctx context.Context, record *stock.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRecordRepository) DeleteByOwner(ctx context.Context, ref catalog.SellableRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// memoryStockRepository backs round-trip tests with a plain map
type memoryStockRepository struct {
	records map[catalog.SellableRef]*stock.StockRecord
}

func newMemoryStockRepository() *memoryStockRepository {
	return &memoryStockRepository{records: make(map[catalog.SellableRef]*stock.StockRecord)}
}

func (r *memoryStockRepository) FindByOwner(_ context.Context, ref catalog.SellableRef) (*stock.StockRecord, error) {
	record, ok := r.records[ref]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return record, nil
}

func (r *memoryStockRepository) Save(_ context.Context, record *stock.StockRecord) error {
	r.records[record.Owner()] = record
	return nil
}

func (r *memoryStockRepository) DeleteByOwner(_ context.Context, ref catalog.SellableRef) error {
	delete(r.records, ref)
	return nil
}

func mustRef(t *testing.T, kind catalog.SellableKind) catalog.SellableRef {
	t.Helper()
	ref, err := catalog.NewSellableRef(kind, uuid.New())
	require.NoError(t, err)
	return ref
}

func TestService_Quantity(t *testing.T) {
	t.Run("returns 0 for never-written sellable", func(t *testing.T) {
		repo := new(MockStockRecordRepository)
		svc := NewService(repo)
		ref := mustRef(t, catalog.SellableKindProduct)

		repo.On("FindByOwner", mock.Anything, ref).Return(nil, shared.ErrNotFound)

		qty, err := svc.Quantity(context.Background(), ref)

		assert.NoError(t, err)
		assert.Equal(t, 0, qty)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		repo := new(MockStockRecordRepository)
		svc := NewService(repo)
		ref := mustRef(t, catalog.SellableKindProduct)

		repo.On("FindByOwner", mock.Anything, ref).Return(nil, assert.AnError)

		_, err := svc.Quantity(context.Background(), ref)

		assert.Error(t, err)
	})
}

func TestService_SetQuantity(t *testing.T) {
	t.Run("rejects negative quantity before any persistence", func(t *testing.T) {
		repo := new(MockStockRecordRepository)
		svc := NewService(repo)
		ref := mustRef(t, catalog.SellableKindAttar)

		err := svc.SetQuantity(context.Background(), ref, -1)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("creates record lazily on first write", func(t *testing.T) {
		repo := new(MockStockRecordRepository)
		svc := NewService(repo)
		ref := mustRef(t, catalog.SellableKindProductSet)

		repo.On("FindByOwner", mock.Anything, ref).Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(r *stock.StockRecord) bool {
			return r.Owner() == ref && r.Quantity == 7
		})).Return(nil)

		err := svc.SetQuantity(context.Background(), ref, 7)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("set then get round-trips for any non-negative quantity", func(t *testing.T) {
		svc := NewService(newMemoryStockRepository())
		ref := mustRef(t, catalog.SellableKindProduct)

		for _, qty := range []int{0, 1, 7, 100, 99999} {
			require.NoError(t, svc.SetQuantity(context.Background(), ref, qty))
			got, err := svc.Quantity(context.Background(), ref)
			require.NoError(t, err)
			assert.Equal(t, qty, got)
		}
	})

	t.Run("second write overwrites the same record", func(t *testing.T) {
		mem := newMemoryStockRepository()
		svc := NewService(mem)
		ref := mustRef(t, catalog.SellableKindAttar)

		require.NoError(t, svc.SetQuantity(context.Background(), ref, 3))
		require.NoError(t, svc.SetQuantity(context.Background(), ref, 9))

		assert.Len(t, mem.records, 1)
		got, err := svc.Quantity(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, 9, got)
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("ignores missing record", func(t *testing.T) {
		repo := new(MockStockRecordRepository)
		svc := NewService(repo)
		ref := mustRef(t, catalog.SellableKindProduct)

		repo.On("DeleteByOwner", mock.Anything, ref).Return(shared.ErrNotFound)

		assert.NoError(t, svc.Remove(context.Background(), ref))
	})
}

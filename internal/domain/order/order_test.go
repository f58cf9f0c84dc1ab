package order

import (
	"testing"
	"time"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		ord, err := NewOrder(uuid.New(), TypeSale, time.Now())

		require.NoError(t, err)
		assert.Equal(t, StatusPending, ord.Status)
		assert.Equal(t, PaymentStatusUnpaid, ord.PaymentStatus)
		assert.True(t, ord.TotalAmount.IsZero())
	})

	t.Run("rejects empty party", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil, TypeSale, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects unknown order type", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), Type("transfer"), time.Now())
		assert.Error(t, err)
	})

	t.Run("defaults zero date to now", func(t *testing.T) {
		ord, err := NewOrder(uuid.New(), TypePurchase, time.Time{})
		require.NoError(t, err)
		assert.False(t, ord.Date.IsZero())
	})
}

func TestNewOrderItem(t *testing.T) {
	ref, err := catalog.NewSellableRef(catalog.SellableKindAttar, uuid.New())
	require.NoError(t, err)

	t.Run("rejects missing sellable reference", func(t *testing.T) {
		_, err := NewOrderItem(catalog.SellableRef{}, "x", 1, decimal.NewFromInt(10), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrderItem(ref, "x", 0, decimal.NewFromInt(10), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewOrderItem(ref, "x", 1, decimal.NewFromInt(-1), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects discount above 100", func(t *testing.T) {
		_, err := NewOrderItem(ref, "x", 1, decimal.NewFromInt(10), decimal.NewFromInt(101))
		assert.Error(t, err)
	})

	t.Run("total price is the discounted pre-GST amount", func(t *testing.T) {
		item, err := NewOrderItem(ref, "x", 2, decimal.NewFromInt(100), decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(180)))
	})
}

func TestOrder_RecalculateTotal(t *testing.T) {
	t.Run("persists rounded GST-inclusive total", func(t *testing.T) {
		ord, err := NewOrder(uuid.New(), TypeSale, time.Now())
		require.NoError(t, err)
		require.NoError(t, ord.AddItem(newTestItem(t, "100", 2, "0")))
		require.NoError(t, ord.AddItem(newTestItem(t, "100", 2, "0")))

		ord.RecalculateTotal(decimal.NewFromInt(18))

		assert.True(t, ord.TotalAmount.Equal(decimal.NewFromInt(472)))
		assert.True(t, ord.GSTRate.Equal(decimal.NewFromInt(18)))
	})

	t.Run("adding items does not touch the stored total", func(t *testing.T) {
		ord, err := NewOrder(uuid.New(), TypeSale, time.Now())
		require.NoError(t, err)
		require.NoError(t, ord.AddItem(newTestItem(t, "100", 1, "0")))
		ord.RecalculateTotal(decimal.NewFromInt(18))
		before := ord.TotalAmount

		require.NoError(t, ord.AddItem(newTestItem(t, "100", 1, "0")))

		assert.True(t, ord.TotalAmount.Equal(before), "total must stay stale until an explicit resync")
	})
}

func TestOrder_StatusTransitions(t *testing.T) {
	newPending := func(t *testing.T) *Order {
		ord, err := NewOrder(uuid.New(), TypeSale, time.Now())
		require.NoError(t, err)
		return ord
	}

	t.Run("pending completes", func(t *testing.T) {
		ord := newPending(t)
		assert.NoError(t, ord.Complete())
		assert.Equal(t, StatusCompleted, ord.Status)
	})

	t.Run("pending cancels", func(t *testing.T) {
		ord := newPending(t)
		assert.NoError(t, ord.Cancel())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		ord := newPending(t)
		require.NoError(t, ord.Complete())
		assert.Error(t, ord.Complete())
		assert.Error(t, ord.Cancel())
	})

	t.Run("cancelled order refuses new items", func(t *testing.T) {
		ord := newPending(t)
		require.NoError(t, ord.Cancel())
		assert.Error(t, ord.AddItem(newTestItem(t, "10", 1, "0")))
	})
}

func TestType_TransactionType(t *testing.T) {
	assert.Equal(t, party.TransactionTypeDebit, TypeSale.TransactionType())
	assert.Equal(t, party.TransactionTypeCredit, TypePurchase.TransactionType())
}

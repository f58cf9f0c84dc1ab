package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCompletedOrder(t *testing.T, partyID uuid.UUID, orderType order.Type, price string, qty int) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(partyID, orderType, time.Now())
	require.NoError(t, err)

	ref, err := catalog.NewSellableRef(catalog.SellableKindProduct, uuid.New())
	require.NoError(t, err)
	item, err := order.NewOrderItem(ref, "Item", qty, decimal.RequireFromString(price), decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, ord.AddItem(*item))

	ord.RecalculateTotal(decimal.Zero) // tests pick round totals; GST covered elsewhere
	require.NoError(t, ord.Complete())
	return ord
}

func TestPostingService_PostOrder(t *testing.T) {
	t.Run("sale debits the customer by the order total", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)

		ord := newCompletedOrder(t, customer.ID, order.TypeSale, "250", 2)
		f.orders.add(ord)

		resp, err := svc.PostOrder(context.Background(), ord)

		require.NoError(t, err)
		assert.Equal(t, party.TransactionTypeDebit, resp.Type)
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(500)))
		require.NotNil(t, resp.OrderID)
		assert.Equal(t, ord.ID, *resp.OrderID)
		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("purchase credits the supplier", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		supplier, err := party.NewParty("Supplier", party.KindSupplier)
		require.NoError(t, err)
		f.parties.add(supplier)

		ord := newCompletedOrder(t, supplier.ID, order.TypePurchase, "400", 2)
		f.orders.add(ord)

		resp, err := svc.PostOrder(context.Background(), ord)

		require.NoError(t, err)
		assert.Equal(t, party.TransactionTypeCredit, resp.Type)
		assert.True(t, supplier.Balance.Equal(decimal.NewFromInt(800)))
	})

	t.Run("refuses to post a pending order", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)

		ord, err := order.NewOrder(customer.ID, order.TypeSale, time.Now())
		require.NoError(t, err)

		_, err = svc.PostOrder(context.Background(), ord)

		assert.Error(t, err)
		assert.Empty(t, f.transactions.transactions)
	})
}

func TestPostingService_AdjustOrderTotal(t *testing.T) {
	t.Run("moves balance by exactly the delta and rewrites the posting", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)

		ord := newCompletedOrder(t, customer.ID, order.TypeSale, "250", 2)
		f.orders.add(ord)
		_, err = svc.PostOrder(context.Background(), ord)
		require.NoError(t, err)

		require.NoError(t, svc.AdjustOrderTotal(context.Background(), ord, decimal.NewFromInt(450)))

		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(450)))
		txs, err := f.transactions.FindByOrder(context.Background(), ord.ID)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(450)))
	})

	t.Run("no-op for an order that was never posted", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)

		ord := newCompletedOrder(t, customer.ID, order.TypeSale, "100", 1)
		f.orders.add(ord)

		require.NoError(t, svc.AdjustOrderTotal(context.Background(), ord, decimal.NewFromInt(90)))
		assert.True(t, customer.Balance.IsZero())
	})
}

func TestPostingService_PostPayment(t *testing.T) {
	t.Run("payment received reduces customer balance", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)

		ord := newCompletedOrder(t, customer.ID, order.TypeSale, "500", 1)
		f.orders.add(ord)
		_, err = svc.PostOrder(context.Background(), ord)
		require.NoError(t, err)

		resp, err := svc.PostPayment(context.Background(), customer.ID, ord.ID, decimal.NewFromInt(200), party.PaymentMethodCash)

		require.NoError(t, err)
		assert.Equal(t, party.TransactionTypeCredit, resp.Type)
		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, order.PaymentStatusPartial, ord.PaymentStatus)
	})

	t.Run("full settlement marks the order paid", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		supplier, err := party.NewParty("Supplier", party.KindSupplier)
		require.NoError(t, err)
		f.parties.add(supplier)

		ord := newCompletedOrder(t, supplier.ID, order.TypePurchase, "800", 1)
		f.orders.add(ord)
		_, err = svc.PostOrder(context.Background(), ord)
		require.NoError(t, err)

		resp, err := svc.PostPayment(context.Background(), supplier.ID, ord.ID, decimal.NewFromInt(800), party.PaymentMethodBank)

		require.NoError(t, err)
		assert.Equal(t, party.TransactionTypeDebit, resp.Type)
		assert.True(t, supplier.Balance.IsZero())
		assert.Equal(t, order.PaymentStatusPaid, ord.PaymentStatus)
	})

	t.Run("rejects payment against another party's order", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		other, err := party.NewParty("Other", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)
		f.parties.add(other)

		ord := newCompletedOrder(t, customer.ID, order.TypeSale, "100", 1)
		f.orders.add(ord)

		_, err = svc.PostPayment(context.Background(), other.ID, ord.ID, decimal.NewFromInt(50), party.PaymentMethodCash)
		assert.Error(t, err)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		f := newLedgerFixture()
		svc := NewPostingService(f.scope, zap.NewNop())

		customer, err := party.NewParty("Customer", party.KindCustomer)
		require.NoError(t, err)
		f.parties.add(customer)

		ord := newCompletedOrder(t, customer.ID, order.TypeSale, "500", 1)
		f.orders.add(ord)
		_, err = svc.PostOrder(context.Background(), ord)
		require.NoError(t, err)

		_, err = svc.PostPayment(context.Background(), customer.ID, ord.ID, decimal.NewFromInt(200), party.PaymentMethod("cheque"))

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PAYMENT_METHOD", domainErr.Code)
		assert.True(t, customer.Balance.Equal(decimal.NewFromInt(500)), "balance must be untouched")
	})
}

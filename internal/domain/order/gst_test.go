package order

import (
	"testing"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, price string, qty int, discount string) OrderItem {
	t.Helper()
	ref, err := catalog.NewSellableRef(catalog.SellableKindProduct, uuid.New())
	require.NoError(t, err)
	item, err := NewOrderItem(ref, "Test Item", qty, decimal.RequireFromString(price), decimal.RequireFromString(discount))
	require.NoError(t, err)
	return *item
}

func TestComputeLine(t *testing.T) {
	t.Run("computes taxable, split GST and line total", func(t *testing.T) {
		item := newTestItem(t, "100", 2, "0")

		line := ComputeLine(item, decimal.NewFromInt(18))

		assert.True(t, line.Taxable.Equal(decimal.NewFromInt(200)), "taxable = %s", line.Taxable)
		assert.True(t, line.GSTAmount.Equal(decimal.NewFromInt(36)), "gst = %s", line.GSTAmount)
		assert.True(t, line.CGST.Equal(decimal.NewFromInt(18)), "cgst = %s", line.CGST)
		assert.True(t, line.SGST.Equal(decimal.NewFromInt(18)), "sgst = %s", line.SGST)
		assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(236)), "total = %s", line.LineTotal)
	})

	t.Run("applies discount before GST", func(t *testing.T) {
		item := newTestItem(t, "100", 2, "10")

		line := ComputeLine(item, decimal.NewFromInt(18))

		// gross 200, discount 20, taxable 180, gst 32.40
		assert.True(t, line.DiscountAmount.Equal(decimal.NewFromInt(20)))
		assert.True(t, line.Taxable.Equal(decimal.NewFromInt(180)))
		assert.True(t, line.LineTotal.Equal(decimal.RequireFromString("212.4")))
	})

	t.Run("splits CGST and SGST equally", func(t *testing.T) {
		item := newTestItem(t, "99.99", 3, "5")

		line := ComputeLine(item, decimal.NewFromInt(18))

		assert.True(t, line.CGST.Equal(line.SGST))
		assert.True(t, line.CGST.Add(line.SGST).Equal(line.GSTAmount))
	})

	t.Run("zero GST rate yields taxable as total", func(t *testing.T) {
		item := newTestItem(t, "50", 4, "0")

		line := ComputeLine(item, decimal.Zero)

		assert.True(t, line.GSTAmount.IsZero())
		assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(200)))
	})
}

func TestComputeBreakdown(t *testing.T) {
	t.Run("order total is the sum of line totals", func(t *testing.T) {
		items := []OrderItem{
			newTestItem(t, "100", 2, "0"),
			newTestItem(t, "100", 2, "0"),
		}

		b := ComputeBreakdown(items, decimal.NewFromInt(18))

		assert.True(t, b.GrandTotal.Equal(decimal.NewFromInt(472)), "grand total = %s", b.GrandTotal)
		assert.True(t, b.TotalTaxable.Equal(decimal.NewFromInt(400)))
		assert.True(t, b.TotalCGST.Equal(decimal.NewFromInt(36)))
		assert.True(t, b.TotalSGST.Equal(decimal.NewFromInt(36)))

		sum := decimal.Zero
		for _, line := range b.Lines {
			sum = sum.Add(line.LineTotal)
		}
		assert.True(t, b.GrandTotal.Equal(sum))
	})

	t.Run("empty item list yields zero totals", func(t *testing.T) {
		b := ComputeBreakdown(nil, decimal.NewFromInt(18))

		assert.Empty(t, b.Lines)
		assert.True(t, b.GrandTotal.IsZero())
	})

	t.Run("negative rate is treated as zero", func(t *testing.T) {
		items := []OrderItem{newTestItem(t, "10", 1, "0")}

		b := ComputeBreakdown(items, decimal.NewFromInt(-5))

		assert.True(t, b.GrandTotal.Equal(decimal.NewFromInt(10)))
	})

	t.Run("line total is monotonic in price, quantity and rate", func(t *testing.T) {
		base := ComputeLine(newTestItem(t, "100", 2, "10"), decimal.NewFromInt(18))

		higherPrice := ComputeLine(newTestItem(t, "110", 2, "10"), decimal.NewFromInt(18))
		assert.True(t, higherPrice.LineTotal.GreaterThanOrEqual(base.LineTotal))

		higherQty := ComputeLine(newTestItem(t, "100", 3, "10"), decimal.NewFromInt(18))
		assert.True(t, higherQty.LineTotal.GreaterThanOrEqual(base.LineTotal))

		higherRate := ComputeLine(newTestItem(t, "100", 2, "10"), decimal.NewFromInt(28))
		assert.True(t, higherRate.LineTotal.GreaterThanOrEqual(base.LineTotal))

		higherDiscount := ComputeLine(newTestItem(t, "100", 2, "20"), decimal.NewFromInt(18))
		assert.True(t, higherDiscount.LineTotal.LessThanOrEqual(base.LineTotal))
	})

	t.Run("intermediate sums keep full precision", func(t *testing.T) {
		// 3 * 33.33 with 18% GST: per-line gst has more than 2 decimals
		items := []OrderItem{
			newTestItem(t, "33.33", 1, "0"),
			newTestItem(t, "33.33", 1, "0"),
			newTestItem(t, "33.33", 1, "0"),
		}

		b := ComputeBreakdown(items, decimal.NewFromInt(18))

		exact := decimal.RequireFromString("99.99").Mul(decimal.RequireFromString("1.18"))
		assert.True(t, b.GrandTotal.Equal(exact), "got %s want %s", b.GrandTotal, exact)
		assert.True(t, b.GrandTotal.Round(2).Equal(decimal.RequireFromString("117.99")))
	})
}

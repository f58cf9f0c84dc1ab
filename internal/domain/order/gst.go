package order

import "github.com/shopspring/decimal"

// DefaultGSTRate is the GST percentage applied when no rate is configured
var DefaultGSTRate = decimal.NewFromInt(18)

var hundred = decimal.NewFromInt(100)

// LineBreakdown is the GST breakdown of a single order line. All values
// keep full precision; rounding happens only at the display or
// persistence boundary.
type LineBreakdown struct {
	ItemID         string
	Name           string
	Quantity       int
	UnitPrice      decimal.Decimal
	Gross          decimal.Decimal
	DiscountAmount decimal.Decimal
	Taxable        decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	GSTAmount      decimal.Decimal
	LineTotal      decimal.Decimal
}

// Breakdown is the GST breakdown of a whole order. Invoice rendering
// consumes these values as-is and performs no computation of its own.
type Breakdown struct {
	Lines        []LineBreakdown
	TotalTaxable decimal.Decimal
	TotalCGST    decimal.Decimal
	TotalSGST    decimal.Decimal
	GrandTotal   decimal.Decimal
}

// ComputeLine computes the GST breakdown for a single item:
//
//	gross    = unit_price * quantity
//	discount = gross * discount_percent / 100
//	taxable  = gross - discount
//	gst      = taxable * gst_rate / 100, split equally into CGST and SGST
//	total    = taxable + gst
func ComputeLine(item OrderItem, gstRate decimal.Decimal) LineBreakdown {
	gross := item.Gross()
	discount := item.DiscountAmount()
	taxable := gross.Sub(discount)
	gstAmount := taxable.Mul(gstRate.Div(hundred))
	half := gstAmount.Div(decimal.NewFromInt(2))

	return LineBreakdown{
		ItemID:         item.ID.String(),
		Name:           item.Name,
		Quantity:       item.Quantity,
		UnitPrice:      item.UnitPrice,
		Gross:          gross,
		DiscountAmount: discount,
		Taxable:        taxable,
		CGST:           half,
		SGST:           half,
		GSTAmount:      gstAmount,
		LineTotal:      taxable.Add(gstAmount),
	}
}

// ComputeBreakdown computes the per-line and order-level GST breakdown.
// The grand total is the exact sum of line totals; callers round to 2
// decimal places (half-up) when persisting or displaying.
func ComputeBreakdown(items []OrderItem, gstRate decimal.Decimal) Breakdown {
	if gstRate.IsNegative() {
		gstRate = decimal.Zero
	}

	b := Breakdown{Lines: make([]LineBreakdown, 0, len(items))}
	for _, item := range items {
		line := ComputeLine(item, gstRate)
		b.Lines = append(b.Lines, line)
		b.TotalTaxable = b.TotalTaxable.Add(line.Taxable)
		b.TotalCGST = b.TotalCGST.Add(line.CGST)
		b.TotalSGST = b.TotalSGST.Add(line.SGST)
		b.GrandTotal = b.GrandTotal.Add(line.LineTotal)
	}
	return b
}

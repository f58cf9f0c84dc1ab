package order

import (
	"time"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemRequest describes one order line. UnitPrice overrides the catalog
// price when set; DiscountPercent falls back to the configured default.
type ItemRequest struct {
	Kind            catalog.SellableKind `json:"kind"`
	SellableID      uuid.UUID            `json:"sellable_id"`
	Quantity        int                  `json:"quantity"`
	UnitPrice       *decimal.Decimal     `json:"unit_price,omitempty"`
	DiscountPercent *decimal.Decimal     `json:"discount_percent,omitempty"`
	FreeQuantity    int                  `json:"free_quantity,omitempty"`
	Scheme          string               `json:"scheme,omitempty"`
}

// CreateOrderRequest creates an order. When Complete is set the order is
// completed and posted to the party ledger in the same call.
type CreateOrderRequest struct {
	PartyID  uuid.UUID     `json:"party_id"`
	Type     order.Type    `json:"type"`
	Date     time.Time     `json:"date,omitempty"`
	Notes    string        `json:"notes,omitempty"`
	Items    []ItemRequest `json:"items"`
	Complete bool          `json:"complete,omitempty"`
}

// UpdateItemsRequest replaces an order's items. The stored total is not
// recomputed here; callers resync explicitly.
type UpdateItemsRequest struct {
	Items []ItemRequest `json:"items"`
}

// ItemResponse is the API view of an order line
type ItemResponse struct {
	ID              uuid.UUID            `json:"id"`
	Kind            catalog.SellableKind `json:"kind"`
	SellableID      uuid.UUID            `json:"sellable_id"`
	Name            string               `json:"name"`
	Quantity        int                  `json:"quantity"`
	UnitPrice       decimal.Decimal      `json:"unit_price"`
	DiscountPercent decimal.Decimal      `json:"discount_percent"`
	TotalPrice      decimal.Decimal      `json:"total_price"`
	FreeQuantity    int                  `json:"free_quantity,omitempty"`
	Scheme          string               `json:"scheme,omitempty"`
}

// OrderResponse is the API view of an order
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	PartyID       uuid.UUID           `json:"party_id"`
	Type          order.Type          `json:"type"`
	Status        order.Status        `json:"status"`
	Date          time.Time           `json:"date"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	GSTRate       decimal.Decimal     `json:"gst_rate"`
	PaymentStatus order.PaymentStatus `json:"payment_status"`
	Notes         string              `json:"notes,omitempty"`
	Items         []ItemResponse      `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// InvoiceLineResponse is one invoice line with its GST split, rounded
// for display.
type InvoiceLineResponse struct {
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Gross           decimal.Decimal `json:"gross"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Taxable         decimal.Decimal `json:"taxable"`
	CGST            decimal.Decimal `json:"cgst"`
	SGST            decimal.Decimal `json:"sgst"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// InvoiceResponse is the invoice breakdown for an order
type InvoiceResponse struct {
	OrderID      uuid.UUID             `json:"order_id"`
	PartyID      uuid.UUID             `json:"party_id"`
	Date         time.Time             `json:"date"`
	GSTRate      decimal.Decimal       `json:"gst_rate"`
	Lines        []InvoiceLineResponse `json:"lines"`
	TotalTaxable decimal.Decimal       `json:"total_taxable"`
	TotalCGST    decimal.Decimal       `json:"total_cgst"`
	TotalSGST    decimal.Decimal       `json:"total_sgst"`
	GrandTotal   decimal.Decimal       `json:"grand_total"`
}

// ResyncResponse reports the outcome of a total resync
type ResyncResponse struct {
	OrderID       uuid.UUID       `json:"order_id"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	NewTotal      decimal.Decimal `json:"new_total"`
	Changed       bool            `json:"changed"`
}

// ToOrderResponse converts a domain order to its API view
func ToOrderResponse(ord *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(ord.Items))
	for i := range ord.Items {
		it := &ord.Items[i]
		items = append(items, ItemResponse{
			ID:              it.ID,
			Kind:            it.Sellable.Kind,
			SellableID:      it.Sellable.ID,
			Name:            it.Name,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TotalPrice:      it.TotalPrice.Round(2),
			FreeQuantity:    it.FreeQuantity,
			Scheme:          it.Scheme,
		})
	}
	return OrderResponse{
		ID:            ord.ID,
		PartyID:       ord.PartyID,
		Type:          ord.Type,
		Status:        ord.Status,
		Date:          ord.Date,
		TotalAmount:   ord.TotalAmount,
		GSTRate:       ord.GSTRate,
		PaymentStatus: ord.PaymentStatus,
		Notes:         ord.Notes,
		Items:         items,
		CreatedAt:     ord.CreatedAt,
		UpdatedAt:     ord.UpdatedAt,
	}
}

// ToInvoiceResponse renders a breakdown as a display invoice, with every
// money field rounded half-up to 2 dp.
func ToInvoiceResponse(ord *order.Order, breakdown *order.Breakdown, rate decimal.Decimal) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(breakdown.Lines))
	for i := range breakdown.Lines {
		l := &breakdown.Lines[i]
		lines = append(lines, InvoiceLineResponse{
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			Gross:          l.Gross.Round(2),
			DiscountAmount: l.DiscountAmount.Round(2),
			Taxable:        l.Taxable.Round(2),
			CGST:           l.CGST.Round(2),
			SGST:           l.SGST.Round(2),
			LineTotal:      l.LineTotal.Round(2),
		})
	}
	return InvoiceResponse{
		OrderID:      ord.ID,
		PartyID:      ord.PartyID,
		Date:         ord.Date,
		GSTRate:      rate,
		Lines:        lines,
		TotalTaxable: breakdown.TotalTaxable.Round(2),
		TotalCGST:    breakdown.TotalCGST.Round(2),
		TotalSGST:    breakdown.TotalSGST.Round(2),
		GrandTotal:   breakdown.GrandTotal.Round(2),
	}
}

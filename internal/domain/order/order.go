package order

import (
	"time"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents whether an order is a sale or a purchase
type Type string

const (
	TypeSale     Type = "sale"
	TypePurchase Type = "purchase"
)

// IsValid returns true if the order type is valid
func (t Type) IsValid() bool {
	switch t {
	case TypeSale, TypePurchase:
		return true
	}
	return false
}

// TransactionType returns the ledger direction an order of this type
// posts on completion: a sale debits the customer, a purchase credits
// the supplier.
func (t Type) TransactionType() party.TransactionType {
	if t == TypePurchase {
		return party.TransactionTypeCredit
	}
	return party.TransactionTypeDebit
}

// Status represents the status of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid returns true if the status is a valid order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return false // terminal
	}
	return false
}

// PaymentStatus represents how much of an order has been settled
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order represents a sale or purchase order for a party.
//
// TotalAmount is the GST-inclusive grand total, computed from the items at
// save time and rounded to 2 decimal places. It is NOT recomputed when
// items change later; callers must resync explicitly, and the
// reconciliation pass detects totals that drifted from their items.
type Order struct {
	shared.BaseEntity
	PartyID       uuid.UUID
	Type          Type
	Status        Status
	Date          time.Time
	TotalAmount   decimal.Decimal
	GSTRate       decimal.Decimal // percent applied when the total was computed
	PaymentStatus PaymentStatus
	Notes         string
	Items         []OrderItem
}

// NewOrder creates a new pending order for a party
func NewOrder(partyID uuid.UUID, orderType Type, date time.Time) (*Order, error) {
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be sale or purchase")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Order{
		BaseEntity:    shared.NewBaseEntity(),
		PartyID:       partyID,
		Type:          orderType,
		Status:        StatusPending,
		Date:          date,
		TotalAmount:   decimal.Zero,
		PaymentStatus: PaymentStatusUnpaid,
		Items:         make([]OrderItem, 0),
	}, nil
}

// AddItem appends a line item. The order total is not touched; call
// RecalculateTotal before persisting.
func (o *Order) AddItem(item OrderItem) error {
	if o.Status == StatusCancelled {
		return shared.ErrInvalidState
	}
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
	o.Touch()
	return nil
}

// ReplaceItems swaps the full item list, as when an order is edited
func (o *Order) ReplaceItems(items []OrderItem) error {
	if o.Status == StatusCancelled {
		return shared.ErrInvalidState
	}
	for i := range items {
		items[i].OrderID = o.ID
	}
	o.Items = items
	o.Touch()
	return nil
}

// RecalculateTotal recomputes the GST-inclusive total from the current
// items and stores it rounded to 2 decimal places.
func (o *Order) RecalculateTotal(gstRate decimal.Decimal) {
	breakdown := ComputeBreakdown(o.Items, gstRate)
	o.TotalAmount = breakdown.GrandTotal.Round(2)
	o.GSTRate = gstRate
	o.Touch()
}

// Complete transitions the order to completed
func (o *Order) Complete() error {
	if !o.Status.CanTransitionTo(StatusCompleted) {
		return shared.NewDomainError("INVALID_STATE", "Order cannot be completed from status "+string(o.Status))
	}
	o.Status = StatusCompleted
	o.Touch()
	return nil
}

// Cancel transitions the order to cancelled
func (o *Order) Cancel() error {
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "Order cannot be cancelled from status "+string(o.Status))
	}
	o.Status = StatusCancelled
	o.Touch()
	return nil
}

// SetPaymentStatus updates the payment status
func (o *Order) SetPaymentStatus(status PaymentStatus) {
	o.PaymentStatus = status
	o.Touch()
}

// OrderItem is a line item referencing exactly one sellable entity.
// UnitPrice may be a party-specific override and need not match the
// catalog price. TotalPrice is the pre-GST line amount after discount.
type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	Sellable        catalog.SellableRef
	Name            string // denormalized display name at order time
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TotalPrice      decimal.Decimal
	FreeQuantity    int    // promotional free units, not priced
	Scheme          string // promotional scheme label
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrderItem creates a validated order line item
func NewOrderItem(ref catalog.SellableRef, name string, quantity int, unitPrice, discountPercent decimal.Decimal) (*OrderItem, error) {
	if !ref.Kind.IsValid() || ref.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLABLE_REF", "Item must reference exactly one sellable entity")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount percent must be between 0 and 100")
	}

	now := time.Now()
	item := &OrderItem{
		ID:              uuid.New(),
		Sellable:        ref,
		Name:            name,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	item.TotalPrice = item.Taxable()
	return item, nil
}

// Gross returns unit price times quantity, before discount and GST
func (i *OrderItem) Gross() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DiscountAmount returns the discount applied to the gross amount
func (i *OrderItem) DiscountAmount() decimal.Decimal {
	return i.Gross().Mul(i.DiscountPercent.Div(decimal.NewFromInt(100)))
}

// Taxable returns the pre-GST line amount after discount
func (i *OrderItem) Taxable() decimal.Decimal {
	return i.Gross().Sub(i.DiscountAmount())
}

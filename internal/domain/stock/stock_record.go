package stock

import (
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockRecord holds the quantity on hand for a single sellable entity.
// At most one record exists per (kind, id) pair; a missing record reads
// as quantity zero. The owning entity's row never stores quantity.
type StockRecord struct {
	shared.BaseEntity
	OwnerKind catalog.SellableKind
	OwnerID   uuid.UUID
	Quantity  int
}

// NewStockRecord creates a stock record for the given sellable reference
func NewStockRecord(ref catalog.SellableRef, quantity int) (*StockRecord, error) {
	if !ref.Kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_SELLABLE_KIND", "Unknown sellable kind")
	}
	if ref.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLABLE_REF", "Sellable ID cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	return &StockRecord{
		BaseEntity: shared.NewBaseEntity(),
		OwnerKind:  ref.Kind,
		OwnerID:    ref.ID,
		Quantity:   quantity,
	}, nil
}

// Owner returns the sellable reference this record belongs to
func (r *StockRecord) Owner() catalog.SellableRef {
	return catalog.SellableRef{Kind: r.OwnerKind, ID: r.OwnerID}
}

// SetQuantity overwrites the quantity, rejecting negative values
func (r *StockRecord) SetQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	r.Quantity = quantity
	r.Touch()
	return nil
}

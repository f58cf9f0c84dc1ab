package catalog

import (
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SellableKind identifies the kind of a sellable entity
type SellableKind string

const (
	SellableKindProduct    SellableKind = "product"
	SellableKindProductSet SellableKind = "product_set"
	SellableKindAttar      SellableKind = "attar"
)

// IsValid returns true if the kind is a known sellable kind
func (k SellableKind) IsValid() bool {
	switch k {
	case SellableKindProduct, SellableKindProductSet, SellableKindAttar:
		return true
	}
	return false
}

// String returns the string representation of SellableKind
func (k SellableKind) String() string {
	return string(k)
}

// SellableRef identifies a single sellable entity of any kind.
// A valid reference always points to exactly one entity; ambiguous or
// empty references are rejected at construction.
type SellableRef struct {
	Kind SellableKind
	ID   uuid.UUID
}

// NewSellableRef creates a validated sellable reference
func NewSellableRef(kind SellableKind, id uuid.UUID) (SellableRef, error) {
	if !kind.IsValid() {
		return SellableRef{}, shared.NewDomainError("INVALID_SELLABLE_KIND", "Unknown sellable kind")
	}
	if id == uuid.Nil {
		return SellableRef{}, shared.NewDomainError("INVALID_SELLABLE_REF", "Sellable ID cannot be empty")
	}
	return SellableRef{Kind: kind, ID: id}, nil
}

// IsZero returns true when the reference is unset
func (r SellableRef) IsZero() bool {
	return r.Kind == "" && r.ID == uuid.Nil
}

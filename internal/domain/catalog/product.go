package catalog

import (
	"strings"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// IsValid returns true if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive:
		return true
	}
	return false
}

// Product represents a catalog product.
// Quantity on hand is NOT stored on the product; it lives in the stock
// record keyed by (kind, id) and is attached by the application layer.
type Product struct {
	shared.BaseEntity
	Code        string
	Name        string
	Description string
	UnitPrice   decimal.Decimal // catalog price; orders may override per party
	HSNCode     string          // HSN classification for GST invoices
	Status      ProductStatus
}

// NewProduct creates a new product with required fields
func NewProduct(code, name string, unitPrice decimal.Decimal) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		Name:       name,
		UnitPrice:  unitPrice,
		Status:     ProductStatusActive,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string, unitPrice decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.UnitPrice = unitPrice
	p.Touch()
	return nil
}

// Deactivate marks the product inactive
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.Touch()
}

// Activate marks the product active
func (p *Product) Activate() {
	p.Status = ProductStatusActive
	p.Touch()
}

// Ref returns the sellable reference for this product
func (p *Product) Ref() SellableRef {
	return SellableRef{Kind: SellableKindProduct, ID: p.ID}
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

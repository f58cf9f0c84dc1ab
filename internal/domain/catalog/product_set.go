package catalog

import (
	"strings"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductSet represents a bundled set of products sold as one unit
type ProductSet struct {
	shared.BaseEntity
	Code        string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Status      ProductStatus
}

// NewProductSet creates a new product set
func NewProductSet(code, name string, unitPrice decimal.Decimal) (*ProductSet, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &ProductSet{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		Name:       name,
		UnitPrice:  unitPrice,
		Status:     ProductStatusActive,
	}, nil
}

// Update updates the set's basic information
func (s *ProductSet) Update(name, description string, unitPrice decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	s.Name = name
	s.Description = description
	s.UnitPrice = unitPrice
	s.Touch()
	return nil
}

// Ref returns the sellable reference for this set
func (s *ProductSet) Ref() SellableRef {
	return SellableRef{Kind: SellableKindProductSet, ID: s.ID}
}

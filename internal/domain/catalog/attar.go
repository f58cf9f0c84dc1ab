package catalog

import (
	"strings"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Attar represents a perfume oil sold by the bottle
type Attar struct {
	shared.BaseEntity
	Code      string
	Name      string
	Fragrance string
	SizeML    int // bottle size in millilitres
	UnitPrice decimal.Decimal
	Status    ProductStatus
}

// NewAttar creates a new attar
func NewAttar(code, name string, sizeML int, unitPrice decimal.Decimal) (*Attar, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if sizeML <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Bottle size must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Attar{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		Name:       name,
		SizeML:     sizeML,
		UnitPrice:  unitPrice,
		Status:     ProductStatusActive,
	}, nil
}

// Update updates the attar's basic information
func (a *Attar) Update(name, fragrance string, sizeML int, unitPrice decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if sizeML <= 0 {
		return shared.NewDomainError("INVALID_SIZE", "Bottle size must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	a.Name = name
	a.Fragrance = fragrance
	a.SizeML = sizeML
	a.UnitPrice = unitPrice
	a.Touch()
	return nil
}

// Ref returns the sellable reference for this attar
func (a *Attar) Ref() SellableRef {
	return SellableRef{Kind: SellableKindAttar, ID: a.ID}
}

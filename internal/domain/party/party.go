package party

import (
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Kind represents whether a party is a customer or a supplier
type Kind string

const (
	KindCustomer Kind = "customer"
	KindSupplier Kind = "supplier"
)

// IsValid returns true if the kind is a valid party kind
func (k Kind) IsValid() bool {
	switch k {
	case KindCustomer, KindSupplier:
		return true
	}
	return false
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Party represents a customer or supplier counterparty with a running balance.
//
// The balance is a derived value: it must always equal the signed sum of the
// party's order-referenced transactions. For customers the balance is
// debits - credits (what the customer owes); for suppliers it is
// credits - debits (what we owe the supplier). It is maintained in lockstep
// with transaction posting and repaired only by the reconciliation pass.
type Party struct {
	shared.BaseEntity
	Name    string
	Kind    Kind
	Phone   string
	Email   string
	Address string
	GSTIN   string // GST registration number
	Balance decimal.Decimal
}

// NewParty creates a new party with required fields
func NewParty(name string, kind Kind) (*Party, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_KIND", "Party kind must be customer or supplier")
	}

	return &Party{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Kind:       kind,
		Balance:    decimal.Zero,
	}, nil
}

// Update updates the party's contact information
func (p *Party) Update(name, phone, email, address, gstin string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}

	p.Name = name
	p.Phone = phone
	p.Email = email
	p.Address = address
	p.GSTIN = gstin
	p.Touch()
	return nil
}

// ApplyDelta adjusts the balance by a signed delta. The caller derives the
// sign via Transaction.SignedEffect or BalanceDelta so the party-kind
// convention is applied in exactly one place.
func (p *Party) ApplyDelta(delta decimal.Decimal) {
	p.Balance = p.Balance.Add(delta)
	p.Touch()
}

// SetBalance overwrites the balance with a reconciled value. Reserved for
// the reconciliation pass; ordinary posting goes through ApplyDelta.
func (p *Party) SetBalance(balance decimal.Decimal) {
	p.Balance = balance
	p.Touch()
}

// BalanceDelta returns the signed balance effect of a transaction of the
// given type and positive amount for this party's kind.
//
//	customer: debit -> +amount, credit -> -amount
//	supplier: credit -> +amount, debit -> -amount
func (p *Party) BalanceDelta(txType TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch p.Kind {
	case KindCustomer:
		if txType == TransactionTypeDebit {
			return amount
		}
		return amount.Neg()
	case KindSupplier:
		if txType == TransactionTypeCredit {
			return amount
		}
		return amount.Neg()
	}
	return decimal.Zero
}

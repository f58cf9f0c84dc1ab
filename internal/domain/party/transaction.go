package party

import (
	"time"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger transaction.
// The effect on a party's balance depends on the party kind; this is not
// generic accounting debit/credit.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// IsValid returns true if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDebit, TransactionTypeCredit:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// PaymentMethod represents how a payment transaction was settled
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodBank PaymentMethod = "bank"
)

// IsValid returns true if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBank:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry for a party. Amount is always
// positive; direction comes from Type. Every balance-affecting transaction
// references the originating order - entries without an order reference
// are a data-integrity defect and are excluded from reconciliation.
type Transaction struct {
	shared.BaseEntity
	PartyID       uuid.UUID
	OrderID       *uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Date          time.Time
}

// NewTransaction creates a new ledger transaction
func NewTransaction(partyID uuid.UUID, orderID *uuid.UUID, txType TransactionType, amount decimal.Decimal) (*Transaction, error) {
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if orderID != nil && *orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER_REF", "Order reference cannot be the nil UUID")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be debit or credit")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	return &Transaction{
		BaseEntity: shared.NewBaseEntity(),
		PartyID:    partyID,
		OrderID:    orderID,
		Type:       txType,
		Amount:     amount,
		Date:       time.Now(),
	}, nil
}

// WithPaymentMethod sets the payment method
func (t *Transaction) WithPaymentMethod(method PaymentMethod) *Transaction {
	t.PaymentMethod = method
	return t
}

// WithDate sets the transaction date
func (t *Transaction) WithDate(date time.Time) *Transaction {
	t.Date = date
	return t
}

// IsOrphan reports whether the transaction lacks an order reference
func (t *Transaction) IsOrphan() bool {
	return t.OrderID == nil
}

// SignedEffect returns the signed balance contribution of this transaction
// for a party of the given kind. Orphan transactions contribute nothing.
func (t *Transaction) SignedEffect(kind Kind) decimal.Decimal {
	if t.IsOrphan() {
		return decimal.Zero
	}
	switch kind {
	case KindCustomer:
		if t.Type == TransactionTypeDebit {
			return t.Amount
		}
		return t.Amount.Neg()
	case KindSupplier:
		if t.Type == TransactionTypeCredit {
			return t.Amount
		}
		return t.Amount.Neg()
	}
	return decimal.Zero
}

// SetAmount overwrites the amount after an order-total correction. The
// party balance must be adjusted by the matching delta in the same unit
// of work.
func (t *Transaction) SetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	t.Amount = amount
	t.Touch()
	return nil
}

package ledger

import (
	"time"

	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionResponse is the API view of a ledger transaction. Postings
// carry the party balance after the write; listings omit it.
type TransactionResponse struct {
	ID            uuid.UUID             `json:"id"`
	PartyID       uuid.UUID             `json:"party_id"`
	OrderID       *uuid.UUID            `json:"order_id,omitempty"`
	Type          party.TransactionType `json:"type"`
	Amount        decimal.Decimal       `json:"amount"`
	PaymentMethod party.PaymentMethod   `json:"payment_method,omitempty"`
	Date          time.Time             `json:"date"`
	BalanceAfter  *decimal.Decimal      `json:"balance_after,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its API view
// with the post-write party balance attached
func ToTransactionResponse(tx *party.Transaction, balanceAfter decimal.Decimal) TransactionResponse {
	response := ToTransactionView(tx)
	response.BalanceAfter = &balanceAfter
	return response
}

// ToTransactionView converts a domain transaction to its API view
func ToTransactionView(tx *party.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		PartyID:       tx.PartyID,
		OrderID:       tx.OrderID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		PaymentMethod: tx.PaymentMethod,
		Date:          tx.Date,
	}
}

// PartyReconciliation is the per-party outcome of a reconciliation pass
type PartyReconciliation struct {
	PartyID     uuid.UUID       `json:"party_id"`
	PartyName   string          `json:"party_name"`
	Kind        party.Kind      `json:"kind"`
	Previous    decimal.Decimal `json:"previous_balance"`
	Recomputed  decimal.Decimal `json:"recomputed_balance"`
	Corrected   bool            `json:"corrected"`
	StaleOrders int             `json:"stale_orders_corrected"`
}

// PartyFailure records a party whose reconciliation failed. Failures are
// isolated: they never abort the batch for other parties.
type PartyFailure struct {
	PartyID uuid.UUID `json:"party_id"`
	Error   string    `json:"error"`
}

// ReconciliationReport is the collective outcome of a reconciliation batch
type ReconciliationReport struct {
	Results        []PartyReconciliation `json:"results"`
	Failures       []PartyFailure        `json:"failures,omitempty"`
	OrphansSkipped int                   `json:"orphans_skipped"`
}

// recomputeTotal derives an order's GST-inclusive total from its current
// items, rounded the way totals are persisted.
func recomputeTotal(ord *order.Order, rate decimal.Decimal) decimal.Decimal {
	return order.ComputeBreakdown(ord.Items, rate).GrandTotal.Round(2)
}

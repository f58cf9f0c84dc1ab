package ledger

import (
	"context"

	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PostingService posts ledger transactions and keeps party balances in
// lockstep. Every posted transaction carries the originating order's
// reference; the balance write and the transaction insert happen in one
// transaction scope with the party row locked.
type PostingService struct {
	scope TransactionScope
	log   *zap.Logger
}

// NewPostingService creates a new PostingService
func NewPostingService(scope TransactionScope, log *zap.Logger) *PostingService {
	return &PostingService{scope: scope, log: log}
}

// PostOrder persists a completed order and posts it to the party
// ledger: a sale debits the customer by the order total, a purchase
// credits the supplier. The order save, the transaction insert and the
// balance write share one scope, so a posting failure leaves the order
// unsaved. Preconditions are checked before anything is touched.
// Returns the created transaction.
func (s *PostingService) PostOrder(ctx context.Context, ord *order.Order) (*TransactionResponse, error) {
	if ord.Status != order.StatusCompleted {
		return nil, shared.NewDomainError("INVALID_STATE", "Only completed orders are posted to the ledger")
	}
	if !ord.TotalAmount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order total must be positive to post")
	}

	var response TransactionResponse
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		p, err := repos.Parties().FindByIDForUpdate(ctx, ord.PartyID)
		if err != nil {
			return err
		}

		if err := repos.Orders().Save(ctx, ord); err != nil {
			return err
		}

		txType := ord.Type.TransactionType()
		orderID := ord.ID
		tx, err := party.NewTransaction(p.ID, &orderID, txType, ord.TotalAmount)
		if err != nil {
			return err
		}
		tx.WithDate(ord.Date)

		if err := repos.Transactions().Create(ctx, tx); err != nil {
			return err
		}

		p.ApplyDelta(p.BalanceDelta(txType, tx.Amount))
		if err := repos.Parties().Save(ctx, p); err != nil {
			return err
		}

		response = ToTransactionResponse(tx, p.Balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("posted order to ledger",
		zap.String("order_id", ord.ID.String()),
		zap.String("party_id", ord.PartyID.String()),
		zap.String("amount", ord.TotalAmount.String()),
	)
	return &response, nil
}

// AdjustOrderTotal persists an order whose total changed and applies the
// ledger correction. The associated posting transaction is updated to
// the new total and the party balance moves by exactly
// new_total - old_total under the same sign convention, all in the one
// scope holding the order save. Orders that were never posted have only
// their row rewritten.
func (s *PostingService) AdjustOrderTotal(ctx context.Context, ord *order.Order, newTotal decimal.Decimal) error {
	if !newTotal.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Corrected total must be positive")
	}

	return s.scope.Execute(ctx, func(repos Repositories) error {
		p, err := repos.Parties().FindByIDForUpdate(ctx, ord.PartyID)
		if err != nil {
			return err
		}

		if err := repos.Orders().Save(ctx, ord); err != nil {
			return err
		}

		posting, err := findPostingTransaction(ctx, repos, ord)
		if err != nil {
			return err
		}
		if posting == nil {
			return nil
		}

		delta := newTotal.Sub(posting.Amount)
		if delta.IsZero() {
			return nil
		}

		if err := posting.SetAmount(newTotal); err != nil {
			return err
		}
		if err := repos.Transactions().Save(ctx, posting); err != nil {
			return err
		}

		p.ApplyDelta(p.BalanceDelta(posting.Type, delta))
		return repos.Parties().Save(ctx, p)
	})
}

// PostPayment records a settlement against an order: payment received
// from a customer is a credit, payment made to a supplier is a debit.
// The payment references the same order as the posting it settles.
func (s *PostingService) PostPayment(ctx context.Context, partyID, orderID uuid.UUID, amount decimal.Decimal, method party.PaymentMethod) (*TransactionResponse, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be cash, upi or bank")
	}

	var response TransactionResponse
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		p, err := repos.Parties().FindByIDForUpdate(ctx, partyID)
		if err != nil {
			return err
		}

		ord, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if ord.PartyID != p.ID {
			return shared.NewDomainError("INVALID_ORDER_REF", "Order does not belong to this party")
		}

		// settlement direction is the opposite of the posting direction
		txType := party.TransactionTypeCredit
		if ord.Type.TransactionType() == party.TransactionTypeCredit {
			txType = party.TransactionTypeDebit
		}

		oid := ord.ID
		tx, err := party.NewTransaction(p.ID, &oid, txType, amount)
		if err != nil {
			return err
		}
		tx.WithPaymentMethod(method)

		if err := repos.Transactions().Create(ctx, tx); err != nil {
			return err
		}

		p.ApplyDelta(p.BalanceDelta(txType, amount))
		if err := repos.Parties().Save(ctx, p); err != nil {
			return err
		}

		if err := updatePaymentStatus(ctx, repos, ord); err != nil {
			return err
		}

		response = ToTransactionResponse(tx, p.Balance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// findPostingTransaction returns the transaction that posted the order's
// total, identified by matching direction, or nil when the order was
// never posted.
func findPostingTransaction(ctx context.Context, repos Repositories, ord *order.Order) (*party.Transaction, error) {
	txs, err := repos.Transactions().FindByOrder(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	postingType := ord.Type.TransactionType()
	for i := range txs {
		if txs[i].Type == postingType {
			return &txs[i], nil
		}
	}
	return nil, nil
}

// PartyTransactions lists a party's ledger transactions, newest first,
// with the total count before pagination.
func (s *PostingService) PartyTransactions(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]TransactionResponse, int64, error) {
	var (
		responses []TransactionResponse
		total     int64
	)
	err := s.scope.Execute(ctx, func(repos Repositories) error {
		if _, err := repos.Parties().FindByID(ctx, partyID); err != nil {
			return err
		}
		txs, count, err := repos.Transactions().FindByParty(ctx, partyID, filter)
		if err != nil {
			return err
		}
		responses = make([]TransactionResponse, len(txs))
		for i := range txs {
			responses[i] = ToTransactionView(&txs[i])
		}
		total = count
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// updatePaymentStatus recomputes the order's payment status from the
// settlements recorded against it.
func updatePaymentStatus(ctx context.Context, repos Repositories, ord *order.Order) error {
	txs, err := repos.Transactions().FindByOrder(ctx, ord.ID)
	if err != nil {
		return err
	}

	settlementType := party.TransactionTypeCredit
	if ord.Type.TransactionType() == party.TransactionTypeCredit {
		settlementType = party.TransactionTypeDebit
	}

	paid := decimal.Zero
	for i := range txs {
		if txs[i].Type == settlementType {
			paid = paid.Add(txs[i].Amount)
		}
	}

	switch {
	case paid.GreaterThanOrEqual(ord.TotalAmount) && ord.TotalAmount.IsPositive():
		ord.SetPaymentStatus(order.PaymentStatusPaid)
	case paid.IsPositive():
		ord.SetPaymentStatus(order.PaymentStatusPartial)
	default:
		ord.SetPaymentStatus(order.PaymentStatusUnpaid)
	}
	return repos.Orders().Save(ctx, ord)
}

package ledger

import (
	"context"

	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
)

// TransactionScope provides transactional access to the ledger repositories.
// All repository operations inside Execute share one database transaction
// and commit or roll back atomically, so a balance write and its matching
// transaction row can never be persisted separately.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories provides access to the repositories participating in a
// ledger unit of work. Parties are loaded with FindByIDForUpdate inside a
// scope, giving the per-party mutual exclusion the posting protocol needs.
type Repositories interface {
	Parties() party.PartyRepository
	Transactions() party.TransactionRepository
	Orders() order.OrderRepository
}

// NoOpTransactionScope runs the unit of work without a real transaction.
// Useful in tests where the repositories are in-memory fakes.
type NoOpTransactionScope struct {
	parties      party.PartyRepository
	transactions party.TransactionRepository
	orders       order.OrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	parties party.PartyRepository,
	transactions party.TransactionRepository,
	orders order.OrderRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		parties:      parties,
		transactions: transactions,
		orders:       orders,
	}
}

// Execute runs the function without transactional guarantees
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repositories) error) error {
	return fn(s)
}

// Parties returns the party repository
func (s *NoOpTransactionScope) Parties() party.PartyRepository {
	return s.parties
}

// Transactions returns the transaction repository
func (s *NoOpTransactionScope) Transactions() party.TransactionRepository {
	return s.transactions
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() order.OrderRepository {
	return s.orders
}

var (
	_ TransactionScope = (*NoOpTransactionScope)(nil)
	_ Repositories     = (*NoOpTransactionScope)(nil)
)

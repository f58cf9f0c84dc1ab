package persistence

import (
	"context"

	appledger "github.com/attarerp/backend/internal/application/ledger"
	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"gorm.io/gorm"
)

// GormTransactionScope implements the ledger TransactionScope using GORM
// transactions. Every repository handed to the unit of work shares one
// database transaction, so a balance write and its transaction row commit
// or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appledger.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormLedgerRepositories{tx: tx})
	})
}

// gormLedgerRepositories provides repositories scoped to one transaction.
type gormLedgerRepositories struct {
	tx *gorm.DB
}

// Parties returns the party repository scoped to the current transaction
func (r *gormLedgerRepositories) Parties() party.PartyRepository {
	return NewGormPartyRepository(r.tx)
}

// Transactions returns the transaction repository scoped to the current transaction
func (r *gormLedgerRepositories) Transactions() party.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

// Orders returns the order repository scoped to the current transaction
func (r *gormLedgerRepositories) Orders() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

var (
	_ appledger.TransactionScope = (*GormTransactionScope)(nil)
	_ appledger.Repositories     = (*gormLedgerRepositories)(nil)
)

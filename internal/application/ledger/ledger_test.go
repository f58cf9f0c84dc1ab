package ledger

import (
	"context"

	"github.com/attarerp/backend/internal/domain/order"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// In-memory repositories backing the ledger service tests.

type memoryPartyRepository struct {
	parties map[uuid.UUID]*party.Party
}

func newMemoryPartyRepository() *memoryPartyRepository {
	return &memoryPartyRepository{parties: make(map[uuid.UUID]*party.Party)}
}

func (r *memoryPartyRepository) add(p *party.Party) { r.parties[p.ID] = p }

func (r *memoryPartyRepository) FindByID(_ context.Context, id uuid.UUID) (*party.Party, error) {
	p, ok := r.parties[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *memoryPartyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	return r.FindByID(ctx, id)
}

func (r *memoryPartyRepository) FindAll(_ context.Context, _ shared.Filter) ([]party.Party, int64, error) {
	out := make([]party.Party, 0, len(r.parties))
	for _, p := range r.parties {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *memoryPartyRepository) FindByKind(_ context.Context, kind party.Kind, _ shared.Filter) ([]party.Party, int64, error) {
	out := make([]party.Party, 0)
	for _, p := range r.parties {
		if p.Kind == kind {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memoryPartyRepository) FindAllIDs(_ context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.parties))
	for id := range r.parties {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *memoryPartyRepository) Save(_ context.Context, p *party.Party) error {
	r.parties[p.ID] = p
	return nil
}

func (r *memoryPartyRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.parties, id)
	return nil
}

type memoryTransactionRepository struct {
	transactions []*party.Transaction
}

func newMemoryTransactionRepository() *memoryTransactionRepository {
	return &memoryTransactionRepository{}
}

func (r *memoryTransactionRepository) Create(_ context.Context, tx *party.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *memoryTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*party.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryTransactionRepository) FindByParty(_ context.Context, partyID uuid.UUID, _ shared.Filter) ([]party.Transaction, int64, error) {
	out := make([]party.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.PartyID == partyID {
			out = append(out, *tx)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memoryTransactionRepository) FindPostedByParty(_ context.Context, partyID uuid.UUID) ([]party.Transaction, error) {
	out := make([]party.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.PartyID == partyID && !tx.IsOrphan() {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *memoryTransactionRepository) FindByOrder(_ context.Context, orderID uuid.UUID) ([]party.Transaction, error) {
	out := make([]party.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.OrderID != nil && *tx.OrderID == orderID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *memoryTransactionRepository) FindOrphans(_ context.Context) ([]party.Transaction, error) {
	out := make([]party.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.IsOrphan() {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *memoryTransactionRepository) CountByParty(_ context.Context, partyID uuid.UUID) (int64, error) {
	var n int64
	for _, tx := range r.transactions {
		if tx.PartyID == partyID {
			n++
		}
	}
	return n, nil
}

func (r *memoryTransactionRepository) Save(_ context.Context, tx *party.Transaction) error {
	for i := range r.transactions {
		if r.transactions[i].ID == tx.ID {
			r.transactions[i] = tx
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *memoryTransactionRepository) DeleteOrphans(_ context.Context) (int64, error) {
	kept := r.transactions[:0]
	var deleted int64
	for _, tx := range r.transactions {
		if tx.IsOrphan() {
			deleted++
			continue
		}
		kept = append(kept, tx)
	}
	r.transactions = kept
	return deleted, nil
}

type memoryOrderRepository struct {
	orders map[uuid.UUID]*order.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[uuid.UUID]*order.Order)}
}

func (r *memoryOrderRepository) add(o *order.Order) { r.orders[o.ID] = o }

func (r *memoryOrderRepository) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *memoryOrderRepository) FindAll(_ context.Context, _ shared.Filter) ([]order.Order, int64, error) {
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *memoryOrderRepository) FindByParty(_ context.Context, partyID uuid.UUID, _ shared.Filter) ([]order.Order, int64, error) {
	out := make([]order.Order, 0)
	for _, o := range r.orders {
		if o.PartyID == partyID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memoryOrderRepository) FindCompletedByParty(_ context.Context, partyID uuid.UUID) ([]order.Order, error) {
	out := make([]order.Order, 0)
	for _, o := range r.orders {
		if o.PartyID == partyID && o.Status == order.StatusCompleted {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memoryOrderRepository) Save(_ context.Context, o *order.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *memoryOrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

// ledgerFixture bundles the in-memory repositories behind a no-op scope
type ledgerFixture struct {
	parties      *memoryPartyRepository
	transactions *memoryTransactionRepository
	orders       *memoryOrderRepository
	scope        *NoOpTransactionScope
}

func newLedgerFixture() *ledgerFixture {
	parties := newMemoryPartyRepository()
	transactions := newMemoryTransactionRepository()
	orders := newMemoryOrderRepository()
	return &ledgerFixture{
		parties:      parties,
		transactions: transactions,
		orders:       orders,
		scope:        NewNoOpTransactionScope(parties, transactions, orders),
	}
}

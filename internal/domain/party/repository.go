package party

import (
	"context"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartyRepository provides persistence for parties
type PartyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)
	// FindByIDForUpdate loads the party under a row lock, held for the
	// duration of the enclosing transaction scope.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Party, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Party, int64, error)
	FindByKind(ctx context.Context, kind Kind, filter shared.Filter) ([]Party, int64, error)
	FindAllIDs(ctx context.Context) ([]uuid.UUID, error)
	Save(ctx context.Context, party *Party) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository provides persistence for ledger transactions
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]Transaction, int64, error)
	// FindPostedByParty returns only order-referenced transactions for
	// the party, the set reconciliation sums over.
	FindPostedByParty(ctx context.Context, partyID uuid.UUID) ([]Transaction, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Transaction, error)
	FindOrphans(ctx context.Context) ([]Transaction, error)
	CountByParty(ctx context.Context, partyID uuid.UUID) (int64, error)
	Save(ctx context.Context, transaction *Transaction) error
	DeleteOrphans(ctx context.Context) (int64, error)
}

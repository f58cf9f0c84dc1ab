package order

import (
	"context"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository provides persistence for orders and their items
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, int64, error)
	FindByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]Order, int64, error)
	// FindCompletedByParty returns completed orders with items loaded,
	// used by the reconciliation pass for stale-total detection.
	FindCompletedByParty(ctx context.Context, partyID uuid.UUID) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

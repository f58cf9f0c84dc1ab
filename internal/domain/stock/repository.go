package stock

import (
	"context"

	"github.com/attarerp/backend/internal/domain/catalog"
)

// StockRecordRepository provides persistence for stock records.
// FindByOwner returns shared.ErrNotFound when no record exists; callers
// treat absence as quantity zero.
type StockRecordRepository interface {
	FindByOwner(ctx context.Context, ref catalog.SellableRef) (*StockRecord, error)
	Save(ctx context.Context, record *StockRecord) error
	DeleteByOwner(ctx context.Context, ref catalog.SellableRef) error
}

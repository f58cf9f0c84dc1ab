package stock

import (
	"context"
	"errors"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/domain/stock"
)

// Service maintains per-sellable quantities in the stock record store.
// Reads and writes of "quantity" on catalog entities are redirected here;
// catalog rows never store quantity themselves.
type Service struct {
	records stock.StockRecordRepository
}

// NewService creates a new stock Service
func NewService(records stock.StockRecordRepository) *Service {
	return &Service{records: records}
}

// Quantity returns the quantity on hand for a sellable, or 0 when no
// stock record exists. Absence is a valid zero state, not an error.
func (s *Service) Quantity(ctx context.Context, ref catalog.SellableRef) (int, error) {
	record, err := s.records.FindByOwner(ctx, ref)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return record.Quantity, nil
}

// ValidateQuantity rejects quantities the stock store would refuse.
// Callers saving an owning entity before syncing stock run this first,
// so an invalid quantity never leaves a stray entity row behind.
func (s *Service) ValidateQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	return nil
}

// SetQuantity writes the quantity for a sellable, creating the stock
// record lazily on first write. Negative quantities are rejected before
// anything is persisted. Callers must save the owning entity first and
// only then sync stock, so a failed entity write never touches stock.
func (s *Service) SetQuantity(ctx context.Context, ref catalog.SellableRef, quantity int) error {
	if err := s.ValidateQuantity(quantity); err != nil {
		return err
	}

	record, err := s.records.FindByOwner(ctx, ref)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		record, err = stock.NewStockRecord(ref, quantity)
		if err != nil {
			return err
		}
		return s.records.Save(ctx, record)
	}

	if err := record.SetQuantity(quantity); err != nil {
		return err
	}
	return s.records.Save(ctx, record)
}

// Remove deletes the stock record for a sellable, as when the owning
// entity is deleted. Missing records are ignored.
func (s *Service) Remove(ctx context.Context, ref catalog.SellableRef) error {
	if err := s.records.DeleteByOwner(ctx, ref); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	return nil
}

package catalog

import (
	"context"

	appstock "github.com/attarerp/backend/internal/application/stock"
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductSetService orchestrates product set CRUD with stock-backed
// quantities, following the same entity-then-stock ordering as products.
type ProductSetService struct {
	sets  catalog.ProductSetRepository
	stock *appstock.Service
	log   *zap.Logger
}

// NewProductSetService creates a new ProductSetService
func NewProductSetService(sets catalog.ProductSetRepository, stock *appstock.Service, log *zap.Logger) *ProductSetService {
	return &ProductSetService{sets: sets, stock: stock, log: log}
}

// Create creates a product set, then writes its opening stock quantity
func (s *ProductSetService) Create(ctx context.Context, req CreateProductSetRequest) (*ProductSetResponse, error) {
	if err := s.stock.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	set, err := catalog.NewProductSet(req.Code, req.Name, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	set.Description = req.Description

	if err := s.sets.Save(ctx, set); err != nil {
		return nil, err
	}
	if err := s.stock.SetQuantity(ctx, set.Ref(), req.Quantity); err != nil {
		return nil, err
	}

	s.log.Info("created product set",
		zap.String("set_id", set.ID.String()),
		zap.String("code", set.Code),
	)

	resp := ToProductSetResponse(set, req.Quantity)
	return &resp, nil
}

// Get returns one product set with its stock quantity
func (s *ProductSetService) Get(ctx context.Context, id uuid.UUID) (*ProductSetResponse, error) {
	set, err := s.sets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quantity, err := s.stock.Quantity(ctx, set.Ref())
	if err != nil {
		return nil, err
	}
	resp := ToProductSetResponse(set, quantity)
	return &resp, nil
}

// List returns product sets with their stock quantities
func (s *ProductSetService) List(ctx context.Context, filter shared.Filter) ([]ProductSetResponse, int64, error) {
	sets, total, err := s.sets.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ProductSetResponse, 0, len(sets))
	for i := range sets {
		quantity, err := s.stock.Quantity(ctx, sets[i].Ref())
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ToProductSetResponse(&sets[i], quantity))
	}
	return out, total, nil
}

// Update updates a set's fields and optionally syncs stock
func (s *ProductSetService) Update(ctx context.Context, id uuid.UUID, req UpdateProductSetRequest) (*ProductSetResponse, error) {
	set, err := s.sets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		if err := s.stock.ValidateQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}

	if err := set.Update(req.Name, req.Description, req.UnitPrice); err != nil {
		return nil, err
	}
	if err := s.sets.Save(ctx, set); err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := s.stock.SetQuantity(ctx, set.Ref(), *req.Quantity); err != nil {
			return nil, err
		}
	}

	quantity, err := s.stock.Quantity(ctx, set.Ref())
	if err != nil {
		return nil, err
	}
	resp := ToProductSetResponse(set, quantity)
	return &resp, nil
}

// Delete removes a product set and its stock record
func (s *ProductSetService) Delete(ctx context.Context, id uuid.UUID) error {
	set, err := s.sets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sets.Delete(ctx, id); err != nil {
		return err
	}
	return s.stock.Remove(ctx, set.Ref())
}

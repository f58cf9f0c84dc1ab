package catalog

import (
	"context"

	appstock "github.com/attarerp/backend/internal/application/stock"
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttarService orchestrates attar CRUD with stock-backed quantities
type AttarService struct {
	attars catalog.AttarRepository
	stock  *appstock.Service
	log    *zap.Logger
}

// NewAttarService creates a new AttarService
func NewAttarService(attars catalog.AttarRepository, stock *appstock.Service, log *zap.Logger) *AttarService {
	return &AttarService{attars: attars, stock: stock, log: log}
}

// Create creates an attar, then writes its opening stock quantity
func (s *AttarService) Create(ctx context.Context, req CreateAttarRequest) (*AttarResponse, error) {
	if err := s.stock.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	attar, err := catalog.NewAttar(req.Code, req.Name, req.SizeML, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	attar.Fragrance = req.Fragrance

	if err := s.attars.Save(ctx, attar); err != nil {
		return nil, err
	}
	if err := s.stock.SetQuantity(ctx, attar.Ref(), req.Quantity); err != nil {
		return nil, err
	}

	s.log.Info("created attar",
		zap.String("attar_id", attar.ID.String()),
		zap.String("code", attar.Code),
	)

	resp := ToAttarResponse(attar, req.Quantity)
	return &resp, nil
}

// Get returns one attar with its stock quantity
func (s *AttarService) Get(ctx context.Context, id uuid.UUID) (*AttarResponse, error) {
	attar, err := s.attars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quantity, err := s.stock.Quantity(ctx, attar.Ref())
	if err != nil {
		return nil, err
	}
	resp := ToAttarResponse(attar, quantity)
	return &resp, nil
}

// List returns attars with their stock quantities
func (s *AttarService) List(ctx context.Context, filter shared.Filter) ([]AttarResponse, int64, error) {
	attars, total, err := s.attars.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]AttarResponse, 0, len(attars))
	for i := range attars {
		quantity, err := s.stock.Quantity(ctx, attars[i].Ref())
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ToAttarResponse(&attars[i], quantity))
	}
	return out, total, nil
}

// Update updates an attar's fields and optionally syncs stock
func (s *AttarService) Update(ctx context.Context, id uuid.UUID, req UpdateAttarRequest) (*AttarResponse, error) {
	attar, err := s.attars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		if err := s.stock.ValidateQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}

	if err := attar.Update(req.Name, req.Fragrance, req.SizeML, req.UnitPrice); err != nil {
		return nil, err
	}
	if err := s.attars.Save(ctx, attar); err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := s.stock.SetQuantity(ctx, attar.Ref(), *req.Quantity); err != nil {
			return nil, err
		}
	}

	quantity, err := s.stock.Quantity(ctx, attar.Ref())
	if err != nil {
		return nil, err
	}
	resp := ToAttarResponse(attar, quantity)
	return &resp, nil
}

// Delete removes an attar and its stock record
func (s *AttarService) Delete(ctx context.Context, id uuid.UUID) error {
	attar, err := s.attars.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.attars.Delete(ctx, id); err != nil {
		return err
	}
	return s.stock.Remove(ctx, attar.Ref())
}

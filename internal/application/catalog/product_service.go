package catalog

import (
	"context"
	"errors"

	appstock "github.com/attarerp/backend/internal/application/stock"
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService orchestrates product CRUD. Quantity lives in the stock
// record store: the quantity is validated up front, the entity row is
// saved, and stock is synced after, so an invalid request never leaves
// a partial write on either side.
type ProductService struct {
	products catalog.ProductRepository
	stock    *appstock.Service
	log      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, stock *appstock.Service, log *zap.Logger) *ProductService {
	return &ProductService{products: products, stock: stock, log: log}
}

// Create creates a product, then writes its opening stock quantity
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	existing, err := s.products.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A product with this code already exists")
	}
	if err := s.stock.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.HSNCode = req.HSNCode

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	if err := s.stock.SetQuantity(ctx, product.Ref(), req.Quantity); err != nil {
		return nil, err
	}

	s.log.Info("created product",
		zap.String("product_id", product.ID.String()),
		zap.String("code", product.Code),
	)

	resp := ToProductResponse(product, req.Quantity)
	return &resp, nil
}

// Get returns one product with its stock quantity
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quantity, err := s.stock.Quantity(ctx, product.Ref())
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product, quantity)
	return &resp, nil
}

// List returns products with their stock quantities
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, total, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		quantity, err := s.stock.Quantity(ctx, products[i].Ref())
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ToProductResponse(&products[i], quantity))
	}
	return out, total, nil
}

// Update updates a product's fields and, when the request carries a
// quantity, syncs stock after the entity save.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		if err := s.stock.ValidateQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}

	if err := product.Update(req.Name, req.Description, req.UnitPrice); err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := s.stock.SetQuantity(ctx, product.Ref(), *req.Quantity); err != nil {
			return nil, err
		}
	}

	quantity, err := s.stock.Quantity(ctx, product.Ref())
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product, quantity)
	return &resp, nil
}

// Delete removes a product and its stock record
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	return s.stock.Remove(ctx, product.Ref())
}

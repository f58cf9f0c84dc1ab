package catalog

import (
	"context"

	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository provides persistence for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductSetRepository provides persistence for product sets
type ProductSetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSet, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductSet, int64, error)
	Save(ctx context.Context, set *ProductSet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AttarRepository provides persistence for attars
type AttarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Attar, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Attar, int64, error)
	Save(ctx context.Context, attar *Attar) error
	Delete(ctx context.Context, id uuid.UUID) error
}

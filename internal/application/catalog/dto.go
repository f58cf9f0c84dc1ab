package catalog

import (
	"time"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest creates a product. Quantity goes to the stock
// record, never to the product row.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	HSNCode     string          `json:"hsn_code,omitempty"`
	Quantity    int             `json:"quantity,omitempty"`
}

// UpdateProductRequest updates a product. A nil Quantity leaves stock
// untouched.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    *int            `json:"quantity,omitempty"`
}

// ProductResponse is the API view of a product with its stock quantity
type ProductResponse struct {
	ID          uuid.UUID              `json:"id"`
	Code        string                 `json:"code"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	UnitPrice   decimal.Decimal        `json:"unit_price"`
	HSNCode     string                 `json:"hsn_code,omitempty"`
	Status      catalog.ProductStatus  `json:"status"`
	Quantity    int                    `json:"quantity"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// CreateProductSetRequest creates a product set
type CreateProductSetRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity,omitempty"`
}

// UpdateProductSetRequest updates a product set
type UpdateProductSetRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    *int            `json:"quantity,omitempty"`
}

// ProductSetResponse is the API view of a product set
type ProductSetResponse struct {
	ID          uuid.UUID             `json:"id"`
	Code        string                `json:"code"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	UnitPrice   decimal.Decimal       `json:"unit_price"`
	Status      catalog.ProductStatus `json:"status"`
	Quantity    int                   `json:"quantity"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// CreateAttarRequest creates an attar
type CreateAttarRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Fragrance string          `json:"fragrance,omitempty"`
	SizeML    int             `json:"size_ml"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity,omitempty"`
}

// UpdateAttarRequest updates an attar
type UpdateAttarRequest struct {
	Name      string          `json:"name"`
	Fragrance string          `json:"fragrance,omitempty"`
	SizeML    int             `json:"size_ml"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  *int            `json:"quantity,omitempty"`
}

// AttarResponse is the API view of an attar
type AttarResponse struct {
	ID        uuid.UUID             `json:"id"`
	Code      string                `json:"code"`
	Name      string                `json:"name"`
	Fragrance string                `json:"fragrance,omitempty"`
	SizeML    int                   `json:"size_ml"`
	UnitPrice decimal.Decimal       `json:"unit_price"`
	Status    catalog.ProductStatus `json:"status"`
	Quantity  int                   `json:"quantity"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ToProductResponse converts a product and its stock quantity to the API view
func ToProductResponse(p *catalog.Product, quantity int) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		HSNCode:     p.HSNCode,
		Status:      p.Status,
		Quantity:    quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductSetResponse converts a set and its stock quantity to the API view
func ToProductSetResponse(s *catalog.ProductSet, quantity int) ProductSetResponse {
	return ProductSetResponse{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Description: s.Description,
		UnitPrice:   s.UnitPrice,
		Status:      s.Status,
		Quantity:    quantity,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToAttarResponse converts an attar and its stock quantity to the API view
func ToAttarResponse(a *catalog.Attar, quantity int) AttarResponse {
	return AttarResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Fragrance: a.Fragrance,
		SizeML:    a.SizeML,
		UnitPrice: a.UnitPrice,
		Status:    a.Status,
		Quantity:  quantity,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

package models

import (
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
// Quantity on hand is never stored here; it lives in stock_records.
type ProductModel struct {
	BaseModel
	Code        string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string                `gorm:"type:varchar(200);not null"`
	Description string                `gorm:"type:text"`
	UnitPrice   decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	HSNCode     string                `gorm:"type:varchar(20)"`
	Status      catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		HSNCode:     m.HSNCode,
		Status:      m.Status,
	}
}

// ProductModelFromDomain builds the persistence model from a domain Product.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		HSNCode:     p.HSNCode,
		Status:      p.Status,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// ProductSetModel is the persistence model for the ProductSet domain entity.
type ProductSetModel struct {
	BaseModel
	Code        string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string                `gorm:"type:varchar(200);not null"`
	Description string                `gorm:"type:text"`
	UnitPrice   decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status      catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductSetModel) TableName() string {
	return "product_sets"
}

// ToDomain converts the persistence model to a domain ProductSet entity.
func (m *ProductSetModel) ToDomain() *catalog.ProductSet {
	return &catalog.ProductSet{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Status:      m.Status,
	}
}

// ProductSetModelFromDomain builds the persistence model from a domain ProductSet.
func ProductSetModelFromDomain(s *catalog.ProductSet) *ProductSetModel {
	m := &ProductSetModel{
		Code:        s.Code,
		Name:        s.Name,
		Description: s.Description,
		UnitPrice:   s.UnitPrice,
		Status:      s.Status,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// AttarModel is the persistence model for the Attar domain entity.
type AttarModel struct {
	BaseModel
	Code      string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string                `gorm:"type:varchar(200);not null"`
	Fragrance string                `gorm:"type:varchar(200)"`
	SizeML    int                   `gorm:"not null"`
	UnitPrice decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status    catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (AttarModel) TableName() string {
	return "attars"
}

// ToDomain converts the persistence model to a domain Attar entity.
func (m *AttarModel) ToDomain() *catalog.Attar {
	return &catalog.Attar{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
		Fragrance:  m.Fragrance,
		SizeML:     m.SizeML,
		UnitPrice:  m.UnitPrice,
		Status:     m.Status,
	}
}

// AttarModelFromDomain builds the persistence model from a domain Attar.
func AttarModelFromDomain(a *catalog.Attar) *AttarModel {
	m := &AttarModel{
		Code:      a.Code,
		Name:      a.Name,
		Fragrance: a.Fragrance,
		SizeML:    a.SizeML,
		UnitPrice: a.UnitPrice,
		Status:    a.Status,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}

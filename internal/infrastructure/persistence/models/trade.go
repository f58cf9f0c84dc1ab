package models

import (
	"time"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	BaseModel
	PartyID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Type          order.Type          `gorm:"type:varchar(10);not null"`
	Status        order.Status        `gorm:"type:varchar(10);not null;index"`
	Date          time.Time           `gorm:"not null;index"`
	TotalAmount   decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	GSTRate       decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:0"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(10);not null;default:'unpaid'"`
	Notes         string              `gorm:"type:text"`
	Items         []OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for order line items.
type OrderItemModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key"`
	OrderID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	SellableKind    catalog.SellableKind `gorm:"type:varchar(20);not null"`
	SellableID      uuid.UUID            `gorm:"type:uuid;not null"`
	Name            string               `gorm:"type:varchar(200);not null"`
	Quantity        int                  `gorm:"not null"`
	UnitPrice       decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	DiscountPercent decimal.Decimal      `gorm:"type:decimal(8,4);not null;default:0"`
	TotalPrice      decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	FreeQuantity    int                  `gorm:"not null;default:0"`
	Scheme          string               `gorm:"type:varchar(100)"`
	CreatedAt       time.Time            `gorm:"not null"`
	UpdatedAt       time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order with items.
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.OrderItem, len(m.Items))
	for i := range m.Items {
		items[i] = *m.Items[i].ToDomain()
	}
	return &order.Order{
		BaseEntity:    m.BaseModel.ToDomain(),
		PartyID:       m.PartyID,
		Type:          m.Type,
		Status:        m.Status,
		Date:          m.Date,
		TotalAmount:   m.TotalAmount,
		GSTRate:       m.GSTRate,
		PaymentStatus: m.PaymentStatus,
		Notes:         m.Notes,
		Items:         items,
	}
}

// OrderModelFromDomain builds the persistence model from a domain Order.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		items[i] = *OrderItemModelFromDomain(&o.Items[i])
	}
	m := &OrderModel{
		PartyID:       o.PartyID,
		Type:          o.Type,
		Status:        o.Status,
		Date:          o.Date,
		TotalAmount:   o.TotalAmount,
		GSTRate:       o.GSTRate,
		PaymentStatus: o.PaymentStatus,
		Notes:         o.Notes,
		Items:         items,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() *order.OrderItem {
	return &order.OrderItem{
		ID:      m.ID,
		OrderID: m.OrderID,
		Sellable: catalog.SellableRef{
			Kind: m.SellableKind,
			ID:   m.SellableID,
		},
		Name:            m.Name,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		DiscountPercent: m.DiscountPercent,
		TotalPrice:      m.TotalPrice,
		FreeQuantity:    m.FreeQuantity,
		Scheme:          m.Scheme,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// OrderItemModelFromDomain builds the persistence model from a domain OrderItem.
func OrderItemModelFromDomain(i *order.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:              i.ID,
		OrderID:         i.OrderID,
		SellableKind:    i.Sellable.Kind,
		SellableID:      i.Sellable.ID,
		Name:            i.Name,
		Quantity:        i.Quantity,
		UnitPrice:       i.UnitPrice,
		DiscountPercent: i.DiscountPercent,
		TotalPrice:      i.TotalPrice,
		FreeQuantity:    i.FreeQuantity,
		Scheme:          i.Scheme,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

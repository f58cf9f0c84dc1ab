package models

import (
	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// StockRecordModel is the persistence model for stock records. The
// unique index enforces at most one record per (owner_kind, owner_id).
type StockRecordModel struct {
	BaseModel
	OwnerKind catalog.SellableKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_stock_owner,priority:1"`
	OwnerID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_stock_owner,priority:2"`
	Quantity  int                  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StockRecordModel) TableName() string {
	return "stock_records"
}

// ToDomain converts the persistence model to a domain StockRecord.
func (m *StockRecordModel) ToDomain() *stock.StockRecord {
	return &stock.StockRecord{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerKind:  m.OwnerKind,
		OwnerID:    m.OwnerID,
		Quantity:   m.Quantity,
	}
}

// StockRecordModelFromDomain builds the persistence model from a domain StockRecord.
func StockRecordModelFromDomain(r *stock.StockRecord) *StockRecordModel {
	m := &StockRecordModel{
		OwnerKind: r.OwnerKind,
		OwnerID:   r.OwnerID,
		Quantity:  r.Quantity,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

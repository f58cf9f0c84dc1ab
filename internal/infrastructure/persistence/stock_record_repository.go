package persistence

import (
	"context"
	"errors"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/domain/stock"
	"github.com/attarerp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStockRecordRepository implements StockRecordRepository using GORM
type GormStockRecordRepository struct {
	db *gorm.DB
}

// NewGormStockRecordRepository creates a new GormStockRecordRepository
func NewGormStockRecordRepository(db *gorm.DB) *GormStockRecordRepository {
	return &GormStockRecordRepository{db: db}
}

var _ stock.StockRecordRepository = (*GormStockRecordRepository)(nil)

// FindByOwner finds the stock record for a sellable
func (r *GormStockRecordRepository) FindByOwner(ctx context.Context, ref catalog.SellableRef) (*stock.StockRecord, error) {
	var model models.StockRecordModel
	if err := r.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", ref.Kind, ref.ID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a stock record
func (r *GormStockRecordRepository) Save(ctx context.Context, record *stock.StockRecord) error {
	model := models.StockRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByOwner removes the stock record for a sellable. Deleting an
// absent record is not an error; the caller only cares that no record
// remains.
func (r *GormStockRecordRepository) DeleteByOwner(ctx context.Context, ref catalog.SellableRef) error {
	return r.db.WithContext(ctx).
		Delete(&models.StockRecordModel{}, "owner_kind = ? AND owner_id = ?", ref.Kind, ref.ID).Error
}

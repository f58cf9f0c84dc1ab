package persistence

import (
	"context"
	"errors"

	"github.com/attarerp/backend/internal/domain/catalog"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductSetRepository implements ProductSetRepository using GORM
type GormProductSetRepository struct {
	db *gorm.DB
}

// NewGormProductSetRepository creates a new GormProductSetRepository
func NewGormProductSetRepository(db *gorm.DB) *GormProductSetRepository {
	return &GormProductSetRepository{db: db}
}

var _ catalog.ProductSetRepository = (*GormProductSetRepository)(nil)

// FindByID finds a product set by its ID
func (r *GormProductSetRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductSet, error) {
	var model models.ProductSetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all product sets matching the filter
func (r *GormProductSetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductSet, int64, error) {
	base := applySearch(r.db.WithContext(ctx).Model(&models.ProductSetModel{}), filter, "name", "code")

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var setModels []models.ProductSetModel
	if err := applyPagination(base, filter, "name ASC").Find(&setModels).Error; err != nil {
		return nil, 0, err
	}

	sets := make([]catalog.ProductSet, len(setModels))
	for i, model := range setModels {
		sets[i] = *model.ToDomain()
	}
	return sets, count, nil
}

// Save persists a product set
func (r *GormProductSetRepository) Save(ctx context.Context, set *catalog.ProductSet) error {
	model := models.ProductSetModelFromDomain(set)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a product set by ID
func (r *GormProductSetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductSetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

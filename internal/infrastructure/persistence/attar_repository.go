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

// GormAttarRepository implements AttarRepository using GORM
type GormAttarRepository struct {
	db *gorm.DB
}

// NewGormAttarRepository creates a new GormAttarRepository
func NewGormAttarRepository(db *gorm.DB) *GormAttarRepository {
	return &GormAttarRepository{db: db}
}

var _ catalog.AttarRepository = (*GormAttarRepository)(nil)

// FindByID finds an attar by its ID
func (r *GormAttarRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Attar, error) {
	var model models.AttarModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all attars matching the filter
func (r *GormAttarRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Attar, int64, error) {
	base := applySearch(r.db.WithContext(ctx).Model(&models.AttarModel{}), filter, "name", "code", "fragrance")

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var attarModels []models.AttarModel
	if err := applyPagination(base, filter, "name ASC").Find(&attarModels).Error; err != nil {
		return nil, 0, err
	}

	attars := make([]catalog.Attar, len(attarModels))
	for i, model := range attarModels {
		attars[i] = *model.ToDomain()
	}
	return attars, count, nil
}

// Save persists an attar
func (r *GormAttarRepository) Save(ctx context.Context, attar *catalog.Attar) error {
	model := models.AttarModelFromDomain(attar)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an attar by ID
func (r *GormAttarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AttarModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

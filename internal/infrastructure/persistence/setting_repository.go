package persistence

import (
	"context"
	"errors"

	"github.com/attarerp/backend/internal/domain/settings"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

var _ settings.SettingRepository = (*GormSettingRepository)(nil)

// FindByKey finds a setting by its key
func (r *GormSettingRepository) FindByKey(ctx context.Context, key string) (*settings.Setting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds every setting, ordered by key
func (r *GormSettingRepository) FindAll(ctx context.Context) ([]settings.Setting, error) {
	var settingModels []models.SettingModel
	if err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, err
	}

	result := make([]settings.Setting, len(settingModels))
	for i, model := range settingModels {
		result[i] = *model.ToDomain()
	}
	return result, nil
}

// Save upserts a setting on its unique key
func (r *GormSettingRepository) Save(ctx context.Context, setting *settings.Setting) error {
	model := models.SettingModelFromDomain(setting)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(model).Error
}

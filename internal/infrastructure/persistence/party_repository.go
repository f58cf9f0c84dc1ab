package persistence

import (
	"context"
	"errors"

	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartyRepository implements PartyRepository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

var _ party.PartyRepository = (*GormPartyRepository)(nil)

// FindByID finds a party by its ID
func (r *GormPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	var model models.PartyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate loads the party under a SELECT ... FOR UPDATE row
// lock. Must run inside a transaction for the lock to be held.
func (r *GormPartyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	var model models.PartyModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all parties matching the filter
func (r *GormPartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]party.Party, int64, error) {
	base := applySearch(r.db.WithContext(ctx).Model(&models.PartyModel{}), filter, "name", "phone", "email", "gstin")
	return r.list(base, filter)
}

// FindByKind finds parties of one kind matching the filter
func (r *GormPartyRepository) FindByKind(ctx context.Context, kind party.Kind, filter shared.Filter) ([]party.Party, int64, error) {
	base := applySearch(
		r.db.WithContext(ctx).Model(&models.PartyModel{}).Where("kind = ?", kind),
		filter, "name", "phone", "email", "gstin",
	)
	return r.list(base, filter)
}

func (r *GormPartyRepository) list(base *gorm.DB, filter shared.Filter) ([]party.Party, int64, error) {
	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var partyModels []models.PartyModel
	if err := applyPagination(base, filter, "name ASC").Find(&partyModels).Error; err != nil {
		return nil, 0, err
	}

	parties := make([]party.Party, len(partyModels))
	for i, model := range partyModels {
		parties[i] = *model.ToDomain()
	}
	return parties, count, nil
}

// FindAllIDs returns the IDs of every party
func (r *GormPartyRepository) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.PartyModel{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Save persists a party
func (r *GormPartyRepository) Save(ctx context.Context, p *party.Party) error {
	model := models.PartyModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a party by ID
func (r *GormPartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PartyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

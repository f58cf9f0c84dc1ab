package persistence

import (
	"context"
	"errors"

	"github.com/attarerp/backend/internal/domain/party"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/attarerp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

var _ party.TransactionRepository = (*GormTransactionRepository)(nil)

// Create inserts a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *party.Transaction) error {
	model := models.TransactionModelFromDomain(transaction)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByParty finds all transactions for a party matching the filter
func (r *GormTransactionRepository) FindByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]party.Transaction, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.TransactionModel{}).Where("party_id = ?", partyID)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var transactionModels []models.TransactionModel
	if err := applyPagination(base, filter, "date DESC, created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, 0, err
	}

	return toDomainTransactions(transactionModels), count, nil
}

// FindPostedByParty finds the order-referenced transactions for a party
func (r *GormTransactionRepository) FindPostedByParty(ctx context.Context, partyID uuid.UUID) ([]party.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ? AND order_id IS NOT NULL", partyID).
		Order("date ASC, created_at ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// FindByOrder finds all transactions referencing an order
func (r *GormTransactionRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]party.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// FindOrphans finds transactions with no order reference
func (r *GormTransactionRepository) FindOrphans(ctx context.Context) ([]party.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("order_id IS NULL").
		Order("date ASC, created_at ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// CountByParty counts all transactions for a party
func (r *GormTransactionRepository) CountByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("party_id = ?", partyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, transaction *party.Transaction) error {
	model := models.TransactionModelFromDomain(transaction)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteOrphans removes every transaction with no order reference and
// reports how many rows were removed
func (r *GormTransactionRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "order_id IS NULL")
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toDomainTransactions(transactionModels []models.TransactionModel) []party.Transaction {
	transactions := make([]party.Transaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions
}

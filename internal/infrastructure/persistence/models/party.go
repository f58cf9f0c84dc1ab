package models

import (
	"time"

	"github.com/attarerp/backend/internal/domain/party"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyModel is the persistence model for the Party domain entity.
type PartyModel struct {
	BaseModel
	Name    string          `gorm:"type:varchar(200);not null"`
	Kind    party.Kind      `gorm:"type:varchar(20);not null;index"`
	Phone   string          `gorm:"type:varchar(50)"`
	Email   string          `gorm:"type:varchar(200)"`
	Address string          `gorm:"type:text"`
	GSTIN   string          `gorm:"type:varchar(20)"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "parties"
}

// ToDomain converts the persistence model to a domain Party entity.
func (m *PartyModel) ToDomain() *party.Party {
	return &party.Party{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Kind:       m.Kind,
		Phone:      m.Phone,
		Email:      m.Email,
		Address:    m.Address,
		GSTIN:      m.GSTIN,
		Balance:    m.Balance,
	}
}

// PartyModelFromDomain builds the persistence model from a domain Party.
func PartyModelFromDomain(p *party.Party) *PartyModel {
	m := &PartyModel{
		Name:    p.Name,
		Kind:    p.Kind,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
		GSTIN:   p.GSTIN,
		Balance: p.Balance,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// TransactionModel is the persistence model for ledger transactions.
// OrderID is nullable: rows without it are orphans, excluded from every
// balance computation.
type TransactionModel struct {
	BaseModel
	PartyID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	OrderID       *uuid.UUID            `gorm:"type:uuid;index"`
	Type          party.TransactionType `gorm:"type:varchar(10);not null"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	PaymentMethod party.PaymentMethod   `gorm:"type:varchar(10)"`
	Date          time.Time             `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction.
func (m *TransactionModel) ToDomain() *party.Transaction {
	return &party.Transaction{
		BaseEntity:    m.BaseModel.ToDomain(),
		PartyID:       m.PartyID,
		OrderID:       m.OrderID,
		Type:          m.Type,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		Date:          m.Date,
	}
}

// TransactionModelFromDomain builds the persistence model from a domain Transaction.
func TransactionModelFromDomain(t *party.Transaction) *TransactionModel {
	m := &TransactionModel{
		PartyID:       t.PartyID,
		OrderID:       t.OrderID,
		Type:          t.Type,
		Amount:        t.Amount,
		PaymentMethod: t.PaymentMethod,
		Date:          t.Date,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

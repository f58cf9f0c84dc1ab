package models

import (
	"github.com/attarerp/backend/internal/domain/settings"
)

// SettingModel is the persistence model for key-value settings.
type SettingModel struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}

// ToDomain converts the persistence model to a domain Setting.
func (m *SettingModel) ToDomain() *settings.Setting {
	return &settings.Setting{
		BaseEntity: m.BaseModel.ToDomain(),
		Key:        m.Key,
		Value:      m.Value,
	}
}

// SettingModelFromDomain builds the persistence model from a domain Setting.
func SettingModelFromDomain(s *settings.Setting) *SettingModel {
	m := &SettingModel{
		Key:   s.Key,
		Value: s.Value,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

package settings

import (
	"context"

	"github.com/attarerp/backend/internal/domain/shared"
)

// Well-known setting keys. Absent keys fall back to documented defaults.
const (
	KeyGSTRate                = "gst.rate"                  // percent, default 18
	KeyDefaultDiscountPercent = "defaults.discount_percent" // percent, default 0
	KeyFreeQuantityLabel      = "defaults.free_qty_label"   // invoice label for free units
	KeySchemeLabel            = "defaults.scheme_label"     // invoice label for schemes
)

// Setting is a single key-value configuration entry
type Setting struct {
	shared.BaseEntity
	Key   string
	Value string
}

// NewSetting creates a setting entry
func NewSetting(key, value string) (*Setting, error) {
	if key == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key cannot be empty")
	}
	return &Setting{
		BaseEntity: shared.NewBaseEntity(),
		Key:        key,
		Value:      value,
	}, nil
}

// SetValue updates the value
func (s *Setting) SetValue(value string) {
	s.Value = value
	s.Touch()
}

// SettingRepository provides persistence for settings
type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*Setting, error)
	FindAll(ctx context.Context) ([]Setting, error)
	Save(ctx context.Context, setting *Setting) error
}

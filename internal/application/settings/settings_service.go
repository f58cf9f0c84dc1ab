package settings

import (
	"context"
	"errors"
	"sync"

	"github.com/attarerp/backend/internal/domain/settings"
	"github.com/attarerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Defaults used when a key is absent from the settings store
var (
	DefaultGSTRate         = decimal.NewFromInt(18)
	DefaultDiscountPercent = decimal.Zero
)

const (
	defaultFreeQuantityLabel = "Free Qty"
	defaultSchemeLabel       = "Scheme"
)

// Service reads key-value settings with a read-through in-memory cache.
// Writes invalidate the cached entry.
type Service struct {
	repo settings.SettingRepository

	mu    sync.RWMutex
	cache map[string]string
}

// NewService creates a new settings Service
func NewService(repo settings.SettingRepository) *Service {
	return &Service{
		repo:  repo,
		cache: make(map[string]string),
	}
}

// Get returns the raw value for a key and whether it was present
func (s *Service) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	if value, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return value, true, nil
	}
	s.mu.RUnlock()

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	s.mu.Lock()
	s.cache[key] = setting.Value
	s.mu.Unlock()
	return setting.Value, true, nil
}

// Set upserts a setting and invalidates the cache entry
func (s *Service) Set(ctx context.Context, key, value string) error {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		setting, err = settings.NewSetting(key, value)
		if err != nil {
			return err
		}
	} else {
		setting.SetValue(value)
	}

	if err := s.repo.Save(ctx, setting); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	return nil
}

// List returns all stored settings
func (s *Service) List(ctx context.Context) ([]settings.Setting, error) {
	return s.repo.FindAll(ctx)
}

// GSTRate returns the configured GST percentage, defaulting to 18.
// Unparseable or negative stored values also fall back to the default.
func (s *Service) GSTRate(ctx context.Context) (decimal.Decimal, error) {
	return s.decimalSetting(ctx, settings.KeyGSTRate, DefaultGSTRate)
}

// DiscountPercent returns the default per-line discount percentage
func (s *Service) DiscountPercent(ctx context.Context) (decimal.Decimal, error) {
	return s.decimalSetting(ctx, settings.KeyDefaultDiscountPercent, DefaultDiscountPercent)
}

// FreeQuantityLabel returns the invoice label for free units
func (s *Service) FreeQuantityLabel(ctx context.Context) (string, error) {
	return s.stringSetting(ctx, settings.KeyFreeQuantityLabel, defaultFreeQuantityLabel)
}

// SchemeLabel returns the invoice label for promotional schemes
func (s *Service) SchemeLabel(ctx context.Context) (string, error) {
	return s.stringSetting(ctx, settings.KeySchemeLabel, defaultSchemeLabel)
}

func (s *Service) decimalSetting(ctx context.Context, key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return fallback, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return fallback, nil
	}
	return value, nil
}

func (s *Service) stringSetting(ctx context.Context, key, fallback string) (string, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok || raw == "" {
		return fallback, nil
	}
	return raw, nil
}

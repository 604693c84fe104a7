package services

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driven"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataFile     = "storage.data_file"
	keyTotalsPolicy = "billing.totals_policy"
	keyCurrency     = "display.currency"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Unset or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	return &domain.AppSettings{
		DataFile:     s.getString(keyDataFile, defaults.DataFile),
		TotalsPolicy: s.getTotalsPolicy(defaults.TotalsPolicy),
		Currency:     s.getString(keyCurrency, defaults.Currency),
	}, nil
}

// SetDataFile sets the path of the data file.
func (s *SettingsService) SetDataFile(path string) error {
	if err := validation.Validate(path, validation.Required); err != nil {
		return fmt.Errorf("data file: %v: %w", err, domain.ErrInvalidInput)
	}
	return s.set(keyDataFile, path)
}

// SetTotalsPolicy sets how stored bill totals are verified on load.
func (s *SettingsService) SetTotalsPolicy(policy domain.TotalsPolicy) error {
	allowed := make([]any, 0, len(domain.AllTotalsPolicies()))
	for _, p := range domain.AllTotalsPolicies() {
		allowed = append(allowed, p)
	}
	if err := validation.Validate(policy, validation.Required, validation.In(allowed...)); err != nil {
		return fmt.Errorf("totals policy %q: %v: %w", policy, err, domain.ErrInvalidInput)
	}
	return s.set(keyTotalsPolicy, policy.String())
}

// SetCurrency sets the currency symbol used for display.
func (s *SettingsService) SetCurrency(symbol string) error {
	if err := validation.Validate(symbol, validation.Required, validation.RuneLength(1, 4)); err != nil {
		return fmt.Errorf("currency %q: %v: %w", symbol, err, domain.ErrInvalidInput)
	}
	return s.set(keyCurrency, symbol)
}

// ConfigPath returns the configuration file location.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) set(key string, value any) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getTotalsPolicy(defaultVal domain.TotalsPolicy) domain.TotalsPolicy {
	val := s.configStore.GetString(keyTotalsPolicy)
	if val == "" {
		return defaultVal
	}
	policy := domain.TotalsPolicy(val)
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}

package driving

import "github.com/custodia-labs/clinic-billing/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns current settings, with defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// SetDataFile sets the path of the data file.
	SetDataFile(path string) error

	// SetTotalsPolicy sets how stored bill totals are verified on load.
	SetTotalsPolicy(policy domain.TotalsPolicy) error

	// SetCurrency sets the currency symbol used for display.
	SetCurrency(symbol string) error

	// ConfigPath returns the configuration file location.
	ConfigPath() string
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

func TestConfigShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Data file:      hospital_data.json")
	assert.Contains(t, out, "Totals policy:  "+domain.TotalsRecompute.Description())
	assert.Contains(t, out, "Currency:       $")
}

func TestConfigShow_IsDefaultSubcommand(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestConfigShow_DataFileOverride(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "--data-file", "/tmp/other.json", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "overridden by --data-file: /tmp/other.json")
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"data_file", "/srv/clinic.json", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/srv/clinic.json", s.DataFile)
		}},
		{"storage.data_file", "b.json", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "b.json", s.DataFile)
		}},
		{"totals_policy", "STRICT", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.TotalsStrict, s.TotalsPolicy)
		}},
		{"currency", "€", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "€", s.Currency)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setupTestServices(t)

			out, err := execute(t, "config", "set", tt.key, tt.value)

			require.NoError(t, err)
			assert.Contains(t, out, "set to: "+tt.value)
			settings, err := settingsService.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestConfigSet_UnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "config", "set", "color", "blue")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown setting "color"`)
	assert.Contains(t, err.Error(), "currency, data_file, totals_policy")
}

func TestConfigSet_InvalidValue(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "config", "set", "totals_policy", "sometimes")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfig_WithoutSettingsService(t *testing.T) {
	resetCLI(t)

	_, err := execute(t, "config", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

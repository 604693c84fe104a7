package domain

const unknownDescription = "Unknown"

// DefaultDataFile is the data file used when none is configured.
const DefaultDataFile = "hospital_data.json"

// DefaultCurrency is the currency symbol used when none is configured.
const DefaultCurrency = "$"

// TotalsPolicy controls how a stored bill total is reconciled with the sum
// of its line items when the store is loaded.
type TotalsPolicy string

// Available totals policies.
const (
	// TotalsRecompute replaces stored totals with the recomputed sum and
	// reports any mismatch.
	TotalsRecompute TotalsPolicy = "recompute"

	// TotalsTrust keeps stored totals as-is and reports any mismatch.
	TotalsTrust TotalsPolicy = "trust"

	// TotalsStrict rejects the data file on any mismatch.
	TotalsStrict TotalsPolicy = "strict"
)

// AllTotalsPolicies returns all available policies in display order.
func AllTotalsPolicies() []TotalsPolicy {
	return []TotalsPolicy{TotalsRecompute, TotalsTrust, TotalsStrict}
}

// IsValid returns true if the policy is recognised.
func (p TotalsPolicy) IsValid() bool {
	switch p {
	case TotalsRecompute, TotalsTrust, TotalsStrict:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p TotalsPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p TotalsPolicy) Description() string {
	switch p {
	case TotalsRecompute:
		return "Recompute (fix stored totals, warn on mismatch)"
	case TotalsTrust:
		return "Trust (keep stored totals, warn on mismatch)"
	case TotalsStrict:
		return "Strict (reject data file on mismatch)"
	default:
		return unknownDescription
	}
}

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	// DataFile is the path of the JSON data file.
	DataFile string

	// TotalsPolicy controls total verification on load.
	TotalsPolicy TotalsPolicy

	// Currency is the symbol printed before amounts.
	Currency string
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DataFile:     DefaultDataFile,
		TotalsPolicy: TotalsRecompute,
		Currency:     DefaultCurrency,
	}
}

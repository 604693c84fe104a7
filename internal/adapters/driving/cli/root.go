// Package cli implements the clinic-billing command tree.
//
// Commands are thin: they coerce user input, call the BillingService and
// SettingsService driving ports, and render results. Services are injected
// by main through the Set* functions.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
	"github.com/custodia-labs/clinic-billing/internal/logger"
)

// StoreOptions selects the data store backing the BillingService.
type StoreOptions struct {
	// DataFile is the JSON data file, from --data-file or the settings.
	DataFile string

	// Ephemeral selects an in-memory store; nothing is written to disk.
	Ephemeral bool

	// TotalsPolicy controls how stored bill totals are checked on load.
	TotalsPolicy domain.TotalsPolicy
}

// BillingFactory builds an unloaded BillingService for the given options.
type BillingFactory func(opts StoreOptions) (driving.BillingService, error)

// SettingsFactory builds the SettingsService for a configuration directory.
type SettingsFactory func(configDir string) (driving.SettingsService, error)

var (
	version = "dev"

	billingFactory  BillingFactory
	billingService  driving.BillingService
	billingLoaded   bool
	settingsFactory SettingsFactory
	settingsService driving.SettingsService

	dataFileFlag  string
	configDirFlag string
	ephemeralFlag bool
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "clinic-billing",
	Short: "Track patients, billable services and bills",
	Long: `clinic-billing keeps patients, a catalog of billable services and the
bills rendered to patients in a single JSON data file.

Run 'clinic-billing menu' for the interactive menu, or use the patient,
service and bill commands directly.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "Path of the JSON data file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Configuration directory (default ~/.clinic-billing)")
	rootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "Keep data in memory only; nothing is saved")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print diagnostic logs to stderr")
}

// Execute runs the root command. Command output goes to stdout; cobra's
// Print helpers would otherwise fall back to stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetVersion sets the version reported by 'clinic-billing version'.
func SetVersion(v string) {
	version = v
}

// SetBillingFactory sets how the BillingService is built on first use.
func SetBillingFactory(f BillingFactory) {
	billingFactory = f
}

// SetBillingService injects an already-loaded BillingService.
func SetBillingService(s driving.BillingService) {
	billingService = s
	billingLoaded = s != nil
}

// SetSettingsFactory sets how the SettingsService is built on first use.
func SetSettingsFactory(f SettingsFactory) {
	settingsFactory = f
}

// SetSettingsService injects the SettingsService.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// requireSettings returns the SettingsService, building it on first use.
func requireSettings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if settingsFactory == nil {
		return nil, errors.New("settings service not configured")
	}
	svc, err := settingsFactory(configDirFlag)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	settingsService = svc
	return svc, nil
}

// requireBilling returns the loaded BillingService, building and loading it
// on first use.
func requireBilling(cmd *cobra.Command) (driving.BillingService, error) {
	if billingService == nil {
		if billingFactory == nil {
			return nil, errors.New("billing service not configured")
		}
		opts, err := storeOptions()
		if err != nil {
			return nil, err
		}
		logger.Debug("Using data file %s (ephemeral=%t, totals=%s)", opts.DataFile, opts.Ephemeral, opts.TotalsPolicy)
		svc, err := billingFactory(opts)
		if err != nil {
			return nil, err
		}
		billingService = svc
	}

	if !billingLoaded {
		report, err := billingService.Load(commandContext(cmd))
		if err != nil {
			return nil, err
		}
		reportLoad(cmd, report)
		billingLoaded = true
	}
	return billingService, nil
}

// storeOptions merges the global flags over the persisted settings.
func storeOptions() (StoreOptions, error) {
	settings := domain.DefaultAppSettings()
	if svc, err := requireSettings(); err == nil {
		current, err := svc.Get()
		if err != nil {
			return StoreOptions{}, fmt.Errorf("reading settings: %w", err)
		}
		settings = *current
	} else if settingsFactory != nil {
		return StoreOptions{}, err
	}

	opts := StoreOptions{
		DataFile:     settings.DataFile,
		Ephemeral:    ephemeralFlag,
		TotalsPolicy: settings.TotalsPolicy,
	}
	if dataFileFlag != "" {
		opts.DataFile = dataFileFlag
	}
	return opts, nil
}

// reportLoad prints warnings about inconsistent bill totals found on load.
func reportLoad(cmd *cobra.Command, report *domain.LoadReport) {
	if report == nil {
		return
	}
	st := newStyles(cmd.ErrOrStderr())
	for _, m := range report.TotalMismatches {
		cmd.PrintErrln(st.Warning.Render(fmt.Sprintf(
			"Warning: bill %d stored total %s does not match its line items (%s)",
			m.BillID, m.Stored, m.Computed)))
	}
}

// saveBilling persists the store after a mutating command.
func saveBilling(cmd *cobra.Command, svc driving.BillingService) error {
	return svc.Save(commandContext(cmd))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// currency returns the configured currency symbol.
func currency() string {
	svc, err := requireSettings()
	if err != nil {
		return domain.DefaultCurrency
	}
	settings, err := svc.Get()
	if err != nil || settings.Currency == "" {
		return domain.DefaultCurrency
	}
	return settings.Currency
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long:  `View and change the data file location, totals policy and display currency.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and write it to the configuration file.

Keys:
  data_file      - Path of the JSON data file
  totals_policy  - How stored bill totals are checked on load
                   (recompute, trust or strict)
  currency       - Currency symbol used when printing amounts`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configSetters maps the accepted keys of 'config set' to their setter.
var configSetters = map[string]func(driving.SettingsService, string) error{
	"data_file": func(s driving.SettingsService, v string) error {
		return s.SetDataFile(v)
	},
	"totals_policy": func(s driving.SettingsService, v string) error {
		return s.SetTotalsPolicy(domain.TotalsPolicy(strings.ToLower(v)))
	},
	"currency": func(s driving.SettingsService, v string) error {
		return s.SetCurrency(v)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Heading.Render("Current Settings"))
	cmd.Println()
	cmd.Printf("  Data file:      %s\n", settings.DataFile)
	if dataFileFlag != "" {
		cmd.Printf("                  (overridden by --data-file: %s)\n", dataFileFlag)
	}
	cmd.Printf("  Totals policy:  %s\n", settings.TotalsPolicy.Description())
	cmd.Printf("  Currency:       %s\n", settings.Currency)
	if path := svc.ConfigPath(); path != "" {
		cmd.Println()
		cmd.Println(st.Muted.Render("Config file: " + path))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(args[0],
		"storage."), "billing."), "display.")
	setter, ok := configSetters[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (valid keys: %s)", args[0], strings.Join(configKeys(), ", "))
	}

	svc, err := requireSettings()
	if err != nil {
		return err
	}
	if err := setter(svc, args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s set to: %s\n", key, args[1])
	return nil
}

func configKeys() []string {
	keys := make([]string, 0, len(configSetters))
	for k := range configSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package main

import (
	"os"

	"github.com/custodia-labs/clinic-billing/internal/adapters/driven/config/file"
	"github.com/custodia-labs/clinic-billing/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/clinic-billing/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clinic-billing/internal/adapters/driving/cli"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driven"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
	"github.com/custodia-labs/clinic-billing/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetSettingsFactory(newSettings)
	cli.SetBillingFactory(newBilling)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

func newBilling(opts cli.StoreOptions) (driving.BillingService, error) {
	var store driven.SnapshotStore
	if opts.Ephemeral {
		store = memory.NewSnapshotStore()
	} else {
		store = jsonfile.NewStore(opts.DataFile)
	}
	return services.NewBillingService(store, opts.TotalsPolicy), nil
}

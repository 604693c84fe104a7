package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clinic-billing/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/services"
	"github.com/custodia-labs/clinic-billing/internal/logger"
)

var testClock = func() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}

// resetCLI clears package state now and again when the test ends.
func resetCLI(t *testing.T) {
	t.Helper()
	reset := func() {
		billingFactory = nil
		billingService = nil
		billingLoaded = false
		settingsFactory = nil
		settingsService = nil
		dataFileFlag = ""
		configDirFlag = ""
		ephemeralFlag = false
		verboseFlag = false
		billPatientFilter = 0
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
	}
	reset()
	t.Cleanup(reset)
}

// setupTestServices injects a billing service over an empty in-memory store
// and settings over an in-memory config store.
func setupTestServices(t *testing.T) (*services.BillingService, *memory.SnapshotStore) {
	t.Helper()
	resetCLI(t)

	store := memory.NewSnapshotStore()
	billing := services.NewBillingService(store, domain.TotalsRecompute)
	billing.SetClock(testClock)

	SetBillingService(billing)
	SetSettingsService(services.NewSettingsService(memory.NewConfigStore()))
	return billing, store
}

// seedCatalog adds one patient and two services.
func seedCatalog(billing *services.BillingService) {
	billing.AddPatient("Ada Lovelace", "555-0100")
	billing.AddService("X-Ray", domain.MoneyFromFloat(100))
	billing.AddService("Consult", domain.MoneyFromFloat(50))
}

// execute runs the root command and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func requireSaved(t *testing.T, store *memory.SnapshotStore, want int) {
	t.Helper()
	require.Equal(t, want, store.Saves(), "unexpected number of saves")
}

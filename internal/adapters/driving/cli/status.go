package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show record counts and totals",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	stats := svc.Stats()
	st := newStyles(cmd.OutOrStdout())

	cmd.Println(st.Heading.Render("Clinic Billing Status"))
	cmd.Printf("  Patients:      %d (next ID %d)\n", stats.Patients, stats.NextPatientID)
	cmd.Printf("  Services:      %d (next ID %d)\n", stats.Services, stats.NextServiceID)
	cmd.Printf("  Bills:         %d (next ID %d)\n", stats.Bills, stats.NextBillID)
	cmd.Printf("  Total billed:  %s\n", stats.Billed.Format(currency()))
	if ephemeralFlag {
		cmd.Println(st.Muted.Render("  Ephemeral mode: changes are not saved"))
	}
	return nil
}

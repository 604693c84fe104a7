package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
)

var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Create and view bills",
	Long: `Create bills from catalog services and view existing bills.

A bill snapshots each service's name and price at creation time; later
catalog changes do not affect it.`,
}

var billCreateCmd = &cobra.Command{
	Use:   "create [patient-id] [service-ids]",
	Short: "Bill services to a patient",
	Long: `Bill services to a patient. Service IDs are comma-separated and may
repeat, e.g. "1,2,2". Unknown service IDs are skipped with a warning.`,
	Args: cobra.ExactArgs(2),
	RunE: runBillCreate,
}

var billListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bills",
	Args:  cobra.NoArgs,
	RunE:  runBillList,
}

var billGetCmd = &cobra.Command{
	Use:   "get [bill-id]",
	Short: "Find a bill by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillGet,
}

// billPatientFilter restricts 'bill list' to one patient; 0 lists all.
var billPatientFilter int

func init() {
	billListCmd.Flags().IntVarP(&billPatientFilter, "patient", "p", 0, "Only list bills for this patient ID")

	billCmd.AddCommand(billCreateCmd)
	billCmd.AddCommand(billListCmd)
	billCmd.AddCommand(billGetCmd)
	rootCmd.AddCommand(billCmd)
}

func runBillCreate(cmd *cobra.Command, args []string) error {
	patientID, err := parseID(args[0], "patient ID")
	if err != nil {
		return err
	}
	serviceIDs, err := parseIDList(args[1])
	if err != nil {
		return err
	}

	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	bill, err := createBill(cmd, svc, patientID, serviceIDs)
	if err != nil {
		return err
	}
	if err := saveBilling(cmd, svc); err != nil {
		return err
	}

	cmd.Println()
	printBill(cmd, bill, currency())
	return nil
}

// createBill creates a bill and reports skipped service IDs. The returned
// error is already phrased for the user.
func createBill(cmd *cobra.Command, svc driving.BillingService, patientID int, serviceIDs []int) (domain.Bill, error) {
	bill, skipped, err := svc.CreateBill(patientID, serviceIDs)
	printSkipped(cmd, skipped)

	switch {
	case errors.Is(err, domain.ErrPatientNotFound):
		return domain.Bill{}, fmt.Errorf("patient with ID %d not found", patientID)
	case errors.Is(err, domain.ErrNoBillableServices):
		return domain.Bill{}, errors.New("no valid services provided for the bill")
	case err != nil:
		return domain.Bill{}, err
	}

	cmd.Printf("Bill created for patient %d with Bill ID: %d\n", patientID, bill.ID)
	return bill, nil
}

func runBillList(cmd *cobra.Command, _ []string) error {
	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	if billPatientFilter != 0 {
		printBills(cmd, svc.ListBillsForPatient(billPatientFilter), currency(),
			fmt.Sprintf("No bills for patient %d.", billPatientFilter))
		return nil
	}
	printBills(cmd, svc.ListBills(), currency(), "No bills created yet.")
	return nil
}

func runBillGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "bill ID")
	if err != nil {
		return err
	}

	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	bill, ok := svc.GetBill(id)
	if !ok {
		return fmt.Errorf("bill %d not found", id)
	}
	printBill(cmd, bill, currency())
	return nil
}

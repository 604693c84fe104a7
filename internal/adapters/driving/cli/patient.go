package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patients",
	Long:  `Register patients and look them up by ID.`,
}

var patientAddCmd = &cobra.Command{
	Use:   "add [name] [contact]",
	Short: "Register a new patient",
	Args:  cobra.ExactArgs(2),
	RunE:  runPatientAdd,
}

var patientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all patients",
	Args:  cobra.NoArgs,
	RunE:  runPatientList,
}

var patientGetCmd = &cobra.Command{
	Use:   "get [patient-id]",
	Short: "Find a patient by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatientGet,
}

func init() {
	patientCmd.AddCommand(patientAddCmd)
	patientCmd.AddCommand(patientListCmd)
	patientCmd.AddCommand(patientGetCmd)
	rootCmd.AddCommand(patientCmd)
}

func runPatientAdd(cmd *cobra.Command, args []string) error {
	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	patient := svc.AddPatient(args[0], args[1])
	if err := saveBilling(cmd, svc); err != nil {
		return err
	}

	cmd.Printf("Patient '%s' added with ID: %d\n", patient.Name, patient.ID)
	return nil
}

func runPatientList(cmd *cobra.Command, _ []string) error {
	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	printPatients(cmd, svc.ListPatients())
	return nil
}

func runPatientGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "patient ID")
	if err != nil {
		return err
	}

	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	patient, ok := svc.GetPatient(id)
	if !ok {
		return fmt.Errorf("patient %d not found", id)
	}
	cmd.Println(formatPatient(patient))
	return nil
}

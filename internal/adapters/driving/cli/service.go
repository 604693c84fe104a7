package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage the service catalog",
	Long:  `Add billable services and list the catalog.`,
}

var serviceAddCmd = &cobra.Command{
	Use:   "add [name] [price]",
	Short: "Add a billable service",
	Args:  cobra.ExactArgs(2),
	RunE:  runServiceAdd,
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all services",
	Args:  cobra.NoArgs,
	RunE:  runServiceList,
}

var serviceGetCmd = &cobra.Command{
	Use:   "get [service-id]",
	Short: "Find a service by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceGet,
}

func init() {
	serviceCmd.AddCommand(serviceAddCmd)
	serviceCmd.AddCommand(serviceListCmd)
	serviceCmd.AddCommand(serviceGetCmd)
	rootCmd.AddCommand(serviceCmd)
}

func runServiceAdd(cmd *cobra.Command, args []string) error {
	price, err := domain.ParseMoney(args[1])
	if err != nil {
		return fmt.Errorf("invalid price %q, please enter a number: %w", args[1], err)
	}

	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	service := svc.AddService(args[0], price)
	if err := saveBilling(cmd, svc); err != nil {
		return err
	}

	cmd.Printf("Service '%s' added with ID: %d\n", service.Name, service.ID)
	return nil
}

func runServiceList(cmd *cobra.Command, _ []string) error {
	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	printServices(cmd, svc.ListServices(), currency())
	return nil
}

func runServiceGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "service ID")
	if err != nil {
		return err
	}

	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	service, ok := svc.GetService(id)
	if !ok {
		return fmt.Errorf("service %d not found", id)
	}
	cmd.Println(formatService(service, currency()))
	return nil
}

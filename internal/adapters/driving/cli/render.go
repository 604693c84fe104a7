package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

// styles holds the lipgloss styles used for command output. Colours are
// dropped automatically when the writer is not a terminal.
type styles struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

const billSeparator = "---------------------------------"

func formatPatient(p domain.Patient) string {
	return fmt.Sprintf("ID: %d, Name: %s, Contact: %s", p.ID, p.Name, p.Contact)
}

func formatService(s domain.Service, cur string) string {
	return fmt.Sprintf("ID: %d, Name: %s, Price: %s", s.ID, s.Name, s.Price.Format(cur))
}

// printBill writes a bill receipt.
func printBill(cmd *cobra.Command, b domain.Bill, cur string) {
	st := newStyles(cmd.OutOrStdout())
	cmd.Println(st.Heading.Render(fmt.Sprintf("Bill ID: %d", b.ID)))
	cmd.Printf("Patient ID: %d\n", b.PatientID)
	cmd.Printf("Date: %s\n", b.CreatedAt)
	cmd.Println("Services Rendered:")
	for _, item := range b.LineItems {
		cmd.Printf("  - %s (%s)\n", item.Name, item.Price.Format(cur))
	}
	cmd.Printf("Total Amount: %s\n", b.Total.Format(cur))
}

func printPatients(cmd *cobra.Command, patients []domain.Patient) {
	if len(patients) == 0 {
		cmd.Println("No patients registered.")
		return
	}
	for _, p := range patients {
		cmd.Println(formatPatient(p))
	}
}

func printServices(cmd *cobra.Command, services []domain.Service, cur string) {
	if len(services) == 0 {
		cmd.Println("No services available.")
		return
	}
	for _, s := range services {
		cmd.Println(formatService(s, cur))
	}
}

func printBills(cmd *cobra.Command, bills []domain.Bill, cur, emptyMsg string) {
	if len(bills) == 0 {
		cmd.Println(emptyMsg)
		return
	}
	st := newStyles(cmd.OutOrStdout())
	for _, b := range bills {
		cmd.Println(st.Muted.Render(billSeparator))
		printBill(cmd, b, cur)
	}
	cmd.Println(st.Muted.Render(billSeparator))
}

// printSkipped warns about service IDs that did not resolve.
func printSkipped(cmd *cobra.Command, skipped []int) {
	st := newStyles(cmd.OutOrStdout())
	for _, id := range skipped {
		cmd.Println(st.Warning.Render(fmt.Sprintf("Warning: Service with ID %d not found. Skipping.", id)))
	}
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive billing menu",
	Long: `Run the numbered billing menu. Changes made in the menu are written to
the data file when you choose "Save and Exit".`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuOptions = []string{
	"Add a new patient",
	"List all patients",
	"Add a new service",
	"List all services",
	"Create a new bill",
	"List all bills",
	"Find a patient by ID",
	"Find a bill by ID",
	"Save and Exit",
}

// menuSession is one run of the interactive menu.
type menuSession struct {
	cmd    *cobra.Command
	svc    driving.BillingService
	reader *bufio.Reader
	cur    string
	st     styles
}

func runMenu(cmd *cobra.Command, _ []string) error {
	svc, err := requireBilling(cmd)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	m := &menuSession{
		cmd:    cmd,
		svc:    svc,
		reader: bufio.NewReader(in),
		cur:    currency(),
		st:     newStyles(cmd.OutOrStdout()),
	}
	return m.run(isTerminal(in))
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// run loops until "Save and Exit" or end of input. The option list is only
// printed for interactive sessions so piped input produces compact output.
func (m *menuSession) run(interactive bool) error {
	for {
		if interactive {
			m.printMenu()
		}

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			m.cmd.Println()
			m.cmd.Println(m.st.Warning.Render("Input closed. Exiting without saving."))
			return nil
		}

		switch choice {
		case "1":
			m.addPatient()
		case "2":
			printPatients(m.cmd, m.svc.ListPatients())
		case "3":
			m.addService()
		case "4":
			printServices(m.cmd, m.svc.ListServices(), m.cur)
		case "5":
			m.createBill()
		case "6":
			printBills(m.cmd, m.svc.ListBills(), m.cur, "No bills created yet.")
		case "7":
			m.findPatient()
		case "8":
			m.findBill()
		case "9":
			if err := saveBilling(m.cmd, m.svc); err != nil {
				return err
			}
			m.cmd.Println("Exiting application. Goodbye!")
			return nil
		default:
			m.cmd.Println("Invalid choice. Please try again.")
		}
	}
}

func (m *menuSession) printMenu() {
	m.cmd.Println()
	m.cmd.Println(m.st.Heading.Render("--- Hospital Billing System Menu ---"))
	for i, option := range menuOptions {
		m.cmd.Printf("%d. %s\n", i+1, option)
	}
}

// prompt prints label and reads the answer. ok is false at end of input.
func (m *menuSession) prompt(label string) (string, bool) {
	m.cmd.Print(label)
	return readLine(m.reader)
}

func (m *menuSession) addPatient() {
	name, ok := m.prompt("Enter patient name: ")
	if !ok {
		return
	}
	contact, ok := m.prompt("Enter patient contact info: ")
	if !ok {
		return
	}
	patient := m.svc.AddPatient(name, contact)
	m.cmd.Printf("Patient '%s' added with ID: %d\n", patient.Name, patient.ID)
}

func (m *menuSession) addService() {
	name, ok := m.prompt("Enter service name: ")
	if !ok {
		return
	}
	input, ok := m.prompt("Enter service price: ")
	if !ok {
		return
	}
	price, err := domain.ParseMoney(input)
	if err != nil {
		m.cmd.Println(m.st.Error.Render("Invalid price. Please enter a number."))
		return
	}
	service := m.svc.AddService(name, price)
	m.cmd.Printf("Service '%s' added with ID: %d\n", service.Name, service.ID)
}

func (m *menuSession) createBill() {
	input, ok := m.prompt("Enter patient ID for the bill: ")
	if !ok {
		return
	}
	patientID, err := parseID(input, "patient ID")
	if err != nil {
		m.cmd.Println(m.st.Error.Render("Invalid input. Please enter a number."))
		return
	}

	m.cmd.Println()
	m.cmd.Println("Available Services:")
	printServices(m.cmd, m.svc.ListServices(), m.cur)

	input, ok = m.prompt("Enter a comma-separated list of service IDs to add to the bill: ")
	if !ok {
		return
	}
	serviceIDs, err := parseIDList(input)
	if err != nil {
		m.cmd.Println(m.st.Error.Render("Invalid service ID list. Please enter numbers separated by commas."))
		return
	}

	bill, err := createBill(m.cmd, m.svc, patientID, serviceIDs)
	if err != nil {
		m.cmd.Println(m.st.Error.Render(fmt.Sprintf("Error: %v.", err)))
		return
	}
	m.cmd.Println()
	m.cmd.Println("--- New Bill Details ---")
	printBill(m.cmd, bill, m.cur)
}

func (m *menuSession) findPatient() {
	input, ok := m.prompt("Enter patient ID to find: ")
	if !ok {
		return
	}
	id, err := parseID(input, "patient ID")
	if err != nil {
		m.cmd.Println(m.st.Error.Render("Invalid input. Please enter a number."))
		return
	}
	patient, found := m.svc.GetPatient(id)
	if !found {
		m.cmd.Println("Patient not found.")
		return
	}
	m.cmd.Println()
	m.cmd.Println("--- Patient Found ---")
	m.cmd.Println(formatPatient(patient))
}

func (m *menuSession) findBill() {
	input, ok := m.prompt("Enter bill ID to find: ")
	if !ok {
		return
	}
	id, err := parseID(input, "bill ID")
	if err != nil {
		m.cmd.Println(m.st.Error.Render("Invalid input. Please enter a number."))
		return
	}
	bill, found := m.svc.GetBill(id)
	if !found {
		m.cmd.Println("Bill not found.")
		return
	}
	m.cmd.Println()
	m.cmd.Println("--- Bill Found ---")
	printBill(m.cmd, bill, m.cur)
}

package driving

import (
	"context"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

// BillingService manages patients, the service catalog and bills.
type BillingService interface {
	// Load replaces the in-memory state with the persisted snapshot.
	// A missing snapshot leaves the store empty and is not an error.
	Load(ctx context.Context) (*domain.LoadReport, error)

	// Save persists the complete in-memory state.
	Save(ctx context.Context) error

	// AddPatient registers a patient under the next patient ID.
	AddPatient(name, contact string) domain.Patient

	// GetPatient looks up a patient. The boolean is false if none exists.
	GetPatient(id int) (domain.Patient, bool)

	// ListPatients returns all patients in insertion order.
	ListPatients() []domain.Patient

	// AddService adds a catalog entry under the next service ID.
	AddService(name string, price domain.Money) domain.Service

	// GetService looks up a catalog entry. The boolean is false if none exists.
	GetService(id int) (domain.Service, bool)

	// ListServices returns the catalog in insertion order.
	ListServices() []domain.Service

	// CreateBill bills the given services to a patient.
	// Unknown service IDs are skipped and returned; duplicates are billed
	// once per occurrence. Returns domain.ErrPatientNotFound for an unknown
	// patient and domain.ErrNoBillableServices if nothing resolved.
	CreateBill(patientID int, serviceIDs []int) (domain.Bill, []int, error)

	// GetBill looks up a bill. The boolean is false if none exists.
	GetBill(id int) (domain.Bill, bool)

	// ListBills returns all bills in insertion order.
	ListBills() []domain.Bill

	// ListBillsForPatient returns one patient's bills in insertion order.
	ListBillsForPatient(patientID int) []domain.Bill

	// Stats summarises the current state.
	Stats() domain.Stats
}

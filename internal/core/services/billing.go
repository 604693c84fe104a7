package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driven"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driving"
	"github.com/custodia-labs/clinic-billing/internal/logger"
)

// Ensure BillingService implements the interface.
var _ driving.BillingService = (*BillingService)(nil)

// BillingService is the in-memory billing store: patient, service and bill
// registries plus their ID counters, persisted as a whole through a
// SnapshotStore.
type BillingService struct {
	mu       sync.RWMutex
	store    driven.SnapshotStore
	policy   domain.TotalsPolicy
	now      func() time.Time
	patients *registry[domain.Patient]
	services *registry[domain.Service]
	bills    *registry[domain.Bill]

	nextPatientID int
	nextServiceID int
	nextBillID    int
}

// NewBillingService creates an empty billing store backed by store.
// An invalid policy falls back to domain.TotalsRecompute.
func NewBillingService(store driven.SnapshotStore, policy domain.TotalsPolicy) *BillingService {
	if !policy.IsValid() {
		policy = domain.TotalsRecompute
	}
	s := &BillingService{
		store:  store,
		policy: policy,
		now:    time.Now,
	}
	s.reset()
	return s
}

// SetClock replaces the clock used to stamp new bills.
func (s *BillingService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// reset empties all registries (caller must hold lock or own s exclusively).
func (s *BillingService) reset() {
	s.patients = newRegistry[domain.Patient]()
	s.services = newRegistry[domain.Service]()
	s.bills = newRegistry[domain.Bill]()
	s.nextPatientID = 1
	s.nextServiceID = 1
	s.nextBillID = 1
}

// Load replaces the in-memory state with the persisted snapshot.
// On error the in-memory state is left unchanged.
func (s *BillingService) Load(ctx context.Context) (*domain.LoadReport, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Load")
	snapshot, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Info("No data at %s, starting with an empty store", s.store.Location())
		s.mu.Lock()
		s.reset()
		s.mu.Unlock()
		return &domain.LoadReport{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	patients := newRegistry[domain.Patient]()
	for _, p := range snapshot.Patients {
		if err := s.checkID("patient_id", p.ID, patients.has(p.ID)); err != nil {
			return nil, err
		}
		patients.put(p.ID, p)
	}

	services := newRegistry[domain.Service]()
	for _, svc := range snapshot.Services {
		if err := s.checkID("service_id", svc.ID, services.has(svc.ID)); err != nil {
			return nil, err
		}
		services.put(svc.ID, svc)
	}

	report := &domain.LoadReport{Found: true}
	bills := newRegistry[domain.Bill]()
	for _, b := range snapshot.Bills {
		if err := s.checkID("bill_id", b.ID, bills.has(b.ID)); err != nil {
			return nil, err
		}
		if len(b.LineItems) == 0 {
			return nil, domain.NewFormatError(s.store.Location(),
				fmt.Sprintf("bill %d has no services_rendered", b.ID), nil)
		}
		b = b.Clone()
		computed, err := b.ComputeTotal()
		if err != nil {
			return nil, domain.NewFormatError(s.store.Location(),
				fmt.Sprintf("bill %d line items do not sum to a valid amount", b.ID), err)
		}
		if computed != b.Total {
			mismatch := domain.TotalMismatch{BillID: b.ID, Stored: b.Total, Computed: computed}
			report.TotalMismatches = append(report.TotalMismatches, mismatch)
			logger.Warn("Bill %d: stored total %s does not match line items %s", b.ID, b.Total, computed)
			switch s.policy {
			case domain.TotalsStrict:
				return nil, domain.NewFormatError(s.store.Location(),
					fmt.Sprintf("bill %d total_amount %s does not match line items %s", b.ID, b.Total, computed), nil)
			case domain.TotalsTrust:
			default:
				b.Total = computed
			}
		}
		bills.put(b.ID, b)
	}

	s.mu.Lock()
	s.patients = patients
	s.services = services
	s.bills = bills
	s.nextPatientID = patients.nextID()
	s.nextServiceID = services.nextID()
	s.nextBillID = bills.nextID()
	s.mu.Unlock()

	report.Patients = patients.len()
	report.Services = services.len()
	report.Bills = bills.len()
	logger.Info("Loaded %d patients, %d services, %d bills from %s",
		report.Patients, report.Services, report.Bills, s.store.Location())
	return report, nil
}

// checkID rejects duplicate record IDs and IDs outside [1, math.MaxInt),
// so the next counter value always fits.
func (s *BillingService) checkID(field string, id int, seen bool) error {
	if id <= 0 || id == math.MaxInt {
		return domain.NewFormatError(s.store.Location(), fmt.Sprintf("invalid %s %d", field, id), nil)
	}
	if seen {
		return domain.NewFormatError(s.store.Location(), fmt.Sprintf("duplicate %s %d", field, id), nil)
	}
	return nil
}

// Save persists the complete in-memory state.
func (s *BillingService) Save(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}

	s.mu.RLock()
	snapshot := domain.Snapshot{
		Patients: s.patients.values(),
		Services: s.services.values(),
		Bills:    cloneBills(s.bills.values()),
	}
	s.mu.RUnlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	logger.Info("Saved %d patients, %d services, %d bills to %s",
		len(snapshot.Patients), len(snapshot.Services), len(snapshot.Bills), s.store.Location())
	return nil
}

// AddPatient registers a patient under the next patient ID.
func (s *BillingService) AddPatient(name, contact string) domain.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient := domain.Patient{ID: s.nextPatientID, Name: name, Contact: contact}
	s.patients.put(patient.ID, patient)
	s.nextPatientID++
	logger.Debug("Added patient %d %q", patient.ID, name)
	return patient
}

// GetPatient looks up a patient by ID.
func (s *BillingService) GetPatient(id int) (domain.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients.get(id)
}

// ListPatients returns all patients in insertion order.
func (s *BillingService) ListPatients() []domain.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients.values()
}

// AddService adds a catalog entry under the next service ID.
func (s *BillingService) AddService(name string, price domain.Money) domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	service := domain.Service{ID: s.nextServiceID, Name: name, Price: price}
	s.services.put(service.ID, service)
	s.nextServiceID++
	logger.Debug("Added service %d %q at %s", service.ID, name, price)
	return service
}

// GetService looks up a catalog entry by ID.
func (s *BillingService) GetService(id int) (domain.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.get(id)
}

// ListServices returns the catalog in insertion order.
func (s *BillingService) ListServices() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.values()
}

// CreateBill bills the given services to a patient.
// The returned slice lists service IDs that did not resolve and were skipped.
func (s *BillingService) CreateBill(patientID int, serviceIDs []int) (domain.Bill, []int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.patients.has(patientID) {
		logger.Debug("Bill rejected: patient %d not found", patientID)
		return domain.Bill{}, nil, fmt.Errorf("patient %d: %w", patientID, domain.ErrPatientNotFound)
	}

	var skipped []int
	items := make([]domain.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		service, ok := s.services.get(id)
		if !ok {
			logger.Warn("Service %d not found, skipping", id)
			skipped = append(skipped, id)
			continue
		}
		items = append(items, service)
	}

	if len(items) == 0 {
		return domain.Bill{}, skipped, domain.ErrNoBillableServices
	}

	bill, err := domain.NewBill(s.nextBillID, patientID, items, s.now())
	if err != nil {
		logger.Warn("Bill rejected for patient %d: %v", patientID, err)
		return domain.Bill{}, skipped, fmt.Errorf("bill total: %w", err)
	}
	s.bills.put(bill.ID, bill)
	s.nextBillID++
	logger.Debug("Created bill %d for patient %d: %d items, total %s",
		bill.ID, patientID, len(bill.LineItems), bill.Total)
	return bill.Clone(), skipped, nil
}

// GetBill looks up a bill by ID.
func (s *BillingService) GetBill(id int) (domain.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.bills.get(id)
	if !ok {
		return domain.Bill{}, false
	}
	return bill.Clone(), true
}

// ListBills returns all bills in insertion order.
func (s *BillingService) ListBills() []domain.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBills(s.bills.values())
}

// ListBillsForPatient returns one patient's bills in insertion order.
func (s *BillingService) ListBillsForPatient(patientID int) []domain.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Bill, 0)
	for _, bill := range s.bills.values() {
		if bill.PatientID == patientID {
			result = append(result, bill.Clone())
		}
	}
	return result
}

// Stats summarises the current state.
func (s *BillingService) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{
		Patients:      s.patients.len(),
		Services:      s.services.len(),
		Bills:         s.bills.len(),
		NextPatientID: s.nextPatientID,
		NextServiceID: s.nextServiceID,
		NextBillID:    s.nextBillID,
	}
	for _, bill := range s.bills.values() {
		stats.Billed += bill.Total
	}
	return stats
}

func cloneBills(bills []domain.Bill) []domain.Bill {
	for i := range bills {
		bills[i] = bills[i].Clone()
	}
	return bills
}

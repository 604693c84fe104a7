package domain

import "time"

// BillDateLayout is the layout used for Bill.CreatedAt.
const BillDateLayout = "2006-01-02 15:04:05"

// Patient represents a person the clinic treats.
// Patients are immutable once created.
type Patient struct {
	// ID is assigned by the store and never reused.
	ID int

	// Name is the patient's display name.
	Name string

	// Contact is free-form contact information.
	Contact string
}

// Service is a billable catalog entry, reusable across many bills.
type Service struct {
	// ID is assigned by the store and never reused.
	ID int

	// Name describes the service.
	Name string

	// Price is stored as given; callers validate it.
	Price Money
}

// Bill records services rendered to a patient.
// LineItems are copies of the catalog entries at billing time, so later
// catalog changes never affect existing bills.
type Bill struct {
	// ID is assigned by the store and never reused.
	ID int

	// PatientID referenced an existing patient when the bill was created.
	PatientID int

	// LineItems holds one service snapshot per rendered service, in order.
	// Never empty.
	LineItems []Service

	// CreatedAt is the local creation time formatted with BillDateLayout.
	CreatedAt string

	// Total is the sum of LineItems prices.
	Total Money
}

// NewBill builds a bill from the given line items and computes its total.
// The items slice is copied. It fails with ErrAmountOutOfRange if the
// total does not fit in Money.
func NewBill(id, patientID int, items []Service, createdAt time.Time) (Bill, error) {
	total, err := SumPrices(items)
	if err != nil {
		return Bill{}, err
	}
	lineItems := make([]Service, len(items))
	copy(lineItems, items)
	return Bill{
		ID:        id,
		PatientID: patientID,
		LineItems: lineItems,
		CreatedAt: createdAt.Format(BillDateLayout),
		Total:     total,
	}, nil
}

// ComputeTotal returns the sum of the bill's line item prices.
func (b *Bill) ComputeTotal() (Money, error) {
	return SumPrices(b.LineItems)
}

// Clone returns a deep copy of the bill.
func (b Bill) Clone() Bill {
	items := make([]Service, len(b.LineItems))
	copy(items, b.LineItems)
	b.LineItems = items
	return b
}

// SumPrices sums service prices in order.
func SumPrices(items []Service) (Money, error) {
	var total Money
	for _, item := range items {
		sum, err := AddMoney(total, item.Price)
		if err != nil {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// Snapshot is the complete persisted state, each registry in insertion order.
type Snapshot struct {
	Patients []Patient
	Services []Service
	Bills    []Bill
}

// TotalMismatch records a bill whose stored total disagrees with the sum of
// its line items.
type TotalMismatch struct {
	BillID   int
	Stored   Money
	Computed Money
}

// LoadReport summarises the outcome of loading the store.
type LoadReport struct {
	// Found is false when no data file existed and the store started empty.
	Found bool

	Patients int
	Services int
	Bills    int

	// TotalMismatches lists bills whose stored total was inconsistent.
	TotalMismatches []TotalMismatch
}

// Stats summarises the current in-memory state.
type Stats struct {
	Patients int
	Services int
	Bills    int

	NextPatientID int
	NextServiceID int
	NextBillID    int

	// Billed is the sum of all bill totals.
	Billed Money
}

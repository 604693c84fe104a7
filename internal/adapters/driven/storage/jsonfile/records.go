package jsonfile

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

// Decoding side: pointer fields distinguish absent or null from zero values.

type fileDocument struct {
	Patients []patientRecord `json:"patients"`
	Services []serviceRecord `json:"services"`
	Bills    []billRecord    `json:"bills"`
}

type patientRecord struct {
	ID      *int    `json:"patient_id"`
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
}

// Validate implements validation.Validatable.
func (r patientRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.NotNil),
		validation.Field(&r.Name, validation.NotNil),
		validation.Field(&r.Contact, validation.NotNil),
	)
}

type serviceRecord struct {
	ID    *int         `json:"service_id"`
	Name  *string      `json:"name"`
	Price *json.Number `json:"price"`
}

// Validate implements validation.Validatable.
func (r serviceRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.NotNil),
		validation.Field(&r.Name, validation.NotNil),
		validation.Field(&r.Price, validation.NotNil),
	)
}

type billRecord struct {
	ID               *int             `json:"bill_id"`
	PatientID        *int             `json:"patient_id"`
	BillDate         *string          `json:"bill_date"`
	ServicesRendered *[]serviceRecord `json:"services_rendered"`
	TotalAmount      *json.Number     `json:"total_amount"`
}

// Validate implements validation.Validatable. Embedded services are
// validated separately so errors can name their position.
func (r billRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.NotNil),
		validation.Field(&r.PatientID, validation.NotNil),
		validation.Field(&r.BillDate, validation.NotNil),
		validation.Field(&r.ServicesRendered, validation.NotNil, validation.Skip),
		validation.Field(&r.TotalAmount, validation.NotNil),
	)
}

func (r patientRecord) toDomain() domain.Patient {
	return domain.Patient{ID: *r.ID, Name: *r.Name, Contact: *r.Contact}
}

func (r serviceRecord) toDomain() (domain.Service, error) {
	price, err := parseAmount(*r.Price)
	if err != nil {
		return domain.Service{}, fmt.Errorf("price: %w", err)
	}
	return domain.Service{ID: *r.ID, Name: *r.Name, Price: price}, nil
}

// parseAmount converts a JSON number to Money. Amounts outside the Money
// range fail, so every loaded record can be written back.
func parseAmount(n json.Number) (domain.Money, error) {
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	m, err := domain.MoneyFromNumber(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", n, err)
	}
	return m, nil
}

// Encoding side: plain values, field order matches the documented shape.

type fileOutput struct {
	Patients []patientOutput `json:"patients"`
	Services []serviceOutput `json:"services"`
	Bills    []billOutput    `json:"bills"`
}

type patientOutput struct {
	ID      int    `json:"patient_id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type serviceOutput struct {
	ID    int         `json:"service_id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

type billOutput struct {
	ID               int             `json:"bill_id"`
	PatientID        int             `json:"patient_id"`
	ServicesRendered []serviceOutput `json:"services_rendered"`
	BillDate         string          `json:"bill_date"`
	TotalAmount      json.Number     `json:"total_amount"`
}

func amount(m domain.Money) json.Number {
	return json.Number(m.String())
}

func newServiceOutput(s domain.Service) serviceOutput {
	return serviceOutput{ID: s.ID, Name: s.Name, Price: amount(s.Price)}
}

func newFileOutput(snapshot domain.Snapshot) fileOutput {
	out := fileOutput{
		Patients: make([]patientOutput, 0, len(snapshot.Patients)),
		Services: make([]serviceOutput, 0, len(snapshot.Services)),
		Bills:    make([]billOutput, 0, len(snapshot.Bills)),
	}
	for _, p := range snapshot.Patients {
		out.Patients = append(out.Patients, patientOutput{ID: p.ID, Name: p.Name, Contact: p.Contact})
	}
	for _, s := range snapshot.Services {
		out.Services = append(out.Services, newServiceOutput(s))
	}
	for _, b := range snapshot.Bills {
		items := make([]serviceOutput, 0, len(b.LineItems))
		for _, item := range b.LineItems {
			items = append(items, newServiceOutput(item))
		}
		out.Bills = append(out.Bills, billOutput{
			ID:               b.ID,
			PatientID:        b.PatientID,
			ServicesRendered: items,
			BillDate:         b.CreatedAt,
			TotalAmount:      amount(b.Total),
		})
	}
	return out
}

package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// filePerm restricts the data file to its owner; it holds patient contacts.
const filePerm = 0600

// Store is a JSON file implementation of driven.SnapshotStore.
type Store struct {
	path string

	// rename is swapped in tests to simulate a failed replace.
	rename func(oldpath, newpath string) error
}

// NewStore creates a store for the JSON file at path.
// The file is not touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		rename: os.Rename,
	}
}

// Location returns the data file path.
func (s *Store) Location() string {
	return s.path
}

// Load reads and validates the data file.
func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	return s.decode(data)
}

func (s *Store) decode(data []byte) (*domain.Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, domain.NewFormatError(s.path, "top-level value must be a JSON object", nil)
	}

	var doc fileDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, domain.NewFormatError(s.path, "not valid JSON", err)
	}

	snapshot := &domain.Snapshot{
		Patients: make([]domain.Patient, 0, len(doc.Patients)),
		Services: make([]domain.Service, 0, len(doc.Services)),
		Bills:    make([]domain.Bill, 0, len(doc.Bills)),
	}

	for i, rec := range doc.Patients {
		if err := rec.Validate(); err != nil {
			return nil, s.recordError("patients", i, err)
		}
		snapshot.Patients = append(snapshot.Patients, rec.toDomain())
	}

	for i, rec := range doc.Services {
		service, err := s.service(rec)
		if err != nil {
			return nil, s.recordError("services", i, err)
		}
		snapshot.Services = append(snapshot.Services, service)
	}

	for i, rec := range doc.Bills {
		bill, err := s.bill(rec)
		if err != nil {
			return nil, s.recordError("bills", i, err)
		}
		snapshot.Bills = append(snapshot.Bills, bill)
	}

	return snapshot, nil
}

func (s *Store) service(rec serviceRecord) (domain.Service, error) {
	if err := rec.Validate(); err != nil {
		return domain.Service{}, err
	}
	return rec.toDomain()
}

func (s *Store) bill(rec billRecord) (domain.Bill, error) {
	if err := rec.Validate(); err != nil {
		return domain.Bill{}, err
	}

	rendered := *rec.ServicesRendered
	items := make([]domain.Service, 0, len(rendered))
	for j, item := range rendered {
		service, err := s.service(item)
		if err != nil {
			return domain.Bill{}, fmt.Errorf("services_rendered[%d]: %w", j, err)
		}
		items = append(items, service)
	}

	total, err := parseAmount(*rec.TotalAmount)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("total_amount: %w", err)
	}

	return domain.Bill{
		ID:        *rec.ID,
		PatientID: *rec.PatientID,
		LineItems: items,
		CreatedAt: *rec.BillDate,
		Total:     total,
	}, nil
}

func (s *Store) recordError(section string, index int, err error) error {
	return domain.NewFormatError(s.path, fmt.Sprintf("%s[%d]", section, index), err)
}

// Save atomically replaces the data file with snapshot.
func (s *Store) Save(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(newFileOutput(snapshot), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	if err := writeSynced(tmpPath, data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err := s.rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing data file: %w", err)
	}

	syncDir(dir)
	return nil
}

// writeSynced creates path exclusively, writes data and flushes it to disk.
func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// syncDir flushes the directory entry after a rename. Not every platform
// supports syncing a directory, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	//nolint:errcheck // best effort
	d.Sync()
	d.Close()
}

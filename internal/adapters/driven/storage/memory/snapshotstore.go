package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
	"github.com/custodia-labs/clinic-billing/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
// It backs ephemeral sessions and tests. Snapshots are deep-copied on the
// way in and out so callers never share line item slices with the store.
type SnapshotStore struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot
	saves    int
}

// NewSnapshotStore creates an empty store. Load reports domain.ErrNotFound
// until the first Save.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// NewSnapshotStoreWith creates a store pre-populated with snapshot.
func NewSnapshotStoreWith(snapshot domain.Snapshot) *SnapshotStore {
	cp := copySnapshot(snapshot)
	return &SnapshotStore{snapshot: &cp}
}

// Load returns a copy of the stored snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrNotFound
	}
	cp := copySnapshot(*s.snapshot)
	return &cp, nil
}

// Save replaces the stored snapshot.
func (s *SnapshotStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := copySnapshot(snapshot)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &cp
	s.saves++
	return nil
}

// Location identifies the store in log output.
func (s *SnapshotStore) Location() string {
	return "memory"
}

// Saves returns how many times Save succeeded.
func (s *SnapshotStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func copySnapshot(in domain.Snapshot) domain.Snapshot {
	out := domain.Snapshot{
		Patients: append([]domain.Patient(nil), in.Patients...),
		Services: append([]domain.Service(nil), in.Services...),
		Bills:    make([]domain.Bill, len(in.Bills)),
	}
	for i := range in.Bills {
		out.Bills[i] = in.Bills[i].Clone()
	}
	return out
}

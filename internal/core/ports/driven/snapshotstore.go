package driven

import (
	"context"

	"github.com/custodia-labs/clinic-billing/internal/core/domain"
)

// SnapshotStore persists the complete billing state as one unit.
type SnapshotStore interface {
	// Load reads the persisted snapshot.
	// Returns domain.ErrNotFound if nothing has been persisted yet, and an
	// error matching domain.ErrFormat if the persisted data is malformed.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Save replaces the persisted snapshot. A failed save must leave the
	// previous snapshot intact.
	Save(ctx context.Context, snapshot domain.Snapshot) error

	// Location describes where the snapshot lives (a file path for
	// file-backed stores).
	Location() string
}

package memory

import (
	"sync/atomic"

	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/index"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
// The active snapshot sits behind an atomic pointer: readers never block,
// and a publish swaps the entire index in one step.
type SnapshotStore struct {
	current atomic.Pointer[index.Snapshot]
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current returns the active snapshot.
func (s *SnapshotStore) Current() (*index.Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, domain.ErrNoSnapshot
	}
	return snapshot, nil
}

// Publish atomically replaces the active snapshot.
func (s *SnapshotStore) Publish(snapshot *index.Snapshot) {
	s.current.Store(snapshot)
}

package driven

import (
	"github.com/custodia-labs/docdex/internal/core/index"
)

// SnapshotStore holds the active index snapshot.
// Queries read whichever snapshot is current; a rebuild publishes its
// replacement in one step so readers never observe a half-built index.
type SnapshotStore interface {
	// Current returns the active snapshot.
	// Returns domain.ErrNoSnapshot before the first build completes.
	Current() (*index.Snapshot, error)

	// Publish atomically replaces the active snapshot.
	Publish(snapshot *index.Snapshot)
}

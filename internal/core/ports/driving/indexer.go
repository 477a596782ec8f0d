package driving

import (
	"context"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// IndexOrchestrator coordinates index builds from the corpus.
type IndexOrchestrator interface {
	// Rebuild walks the corpus, builds a fresh snapshot and publishes it.
	// Queries keep answering from the previous snapshot until the new one
	// is published. Only one build runs at a time; a second concurrent
	// call returns domain.ErrBuildInProgress.
	Rebuild(ctx context.Context) (domain.BuildStats, error)
}

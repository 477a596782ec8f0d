package driven

import (
	"context"
	"errors"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// Connector reads raw documents from a corpus.
// Each connector type (filesystem today, remote stores later) implements
// this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Root returns the corpus root this connector reads from.
	Root() string

	// Validate checks the corpus root is reachable.
	// For the filesystem this checks the root exists and is a readable
	// directory. Returns nil if ready to walk, an error describing the
	// problem otherwise.
	Validate(ctx context.Context) error

	// FullSync streams every document under the corpus root.
	// Returns channels for documents and errors. Per-file read failures
	// are sent on the error channel and do not stop the walk. A successful
	// walk ends with a WalkComplete sentinel on the error channel.
	FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Close releases resources.
	Close() error
}

// WalkComplete is sent on the error channel when a walk finishes.
// Carries the number of files the walk skipped.
type WalkComplete struct {
	Skipped int
}

// Error implements the error interface.
// This allows WalkComplete to be sent on the error channel.
func (WalkComplete) Error() string {
	return "walk complete"
}

// IsWalkComplete checks if an error is actually a successful completion.
// Returns the WalkComplete and true if it is, nil and false otherwise.
func IsWalkComplete(err error) (*WalkComplete, bool) {
	var wc *WalkComplete
	if errors.As(err, &wc) {
		return wc, true
	}
	return nil, false
}

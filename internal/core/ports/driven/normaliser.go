package driven

import (
	"context"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// Normaliser transforms raw documents into indexed form.
// Each normaliser handles specific file extensions (e.g., Markdown).
type Normaliser interface {
	// Extensions returns the file extensions this normaliser handles.
	// Extensions are lowercase and include the leading dot.
	Extensions() []string

	// Normalise parses a raw document into a domain document.
	// Malformed content degrades rather than fails: the normaliser falls
	// back to defaults and keeps the document indexable wherever it can.
	Normalise(ctx context.Context, raw *domain.RawDocument) (domain.Document, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search performs keyword search across all indexed documents.
	// The filter narrows candidates before scoring; results arrive in
	// descending score order. The full match set is returned and callers
	// apply their own display limits.
	Search(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.SearchResult, error)
}

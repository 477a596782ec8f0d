package driving

import (
	"context"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// LibraryService exposes the indexed corpus for browsing.
type LibraryService interface {
	// Get retrieves a document by its corpus-relative path.
	Get(ctx context.Context, path string) (domain.Document, error)

	// Related returns documents connected to the given one, strongest
	// connection first. A positive limit truncates the result; zero or
	// negative applies the service default.
	Related(ctx context.Context, path string, limit int) ([]domain.SearchResult, error)

	// List returns a summary of every indexed document in corpus order.
	List(ctx context.Context) ([]domain.DocumentSummary, error)

	// Categories returns all distinct categories in ascending order,
	// each with its document count.
	Categories(ctx context.Context) ([]domain.TaxonomyEntry, error)

	// Tags returns all distinct tags in ascending order, each with its
	// document count.
	Tags(ctx context.Context) ([]domain.TaxonomyEntry, error)

	// Stats describes the active snapshot.
	Stats(ctx context.Context) (domain.BuildStats, error)
}

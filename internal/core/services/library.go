package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/index"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// DefaultRelatedLimit caps related-document results when callers pass
// no limit of their own.
const DefaultRelatedLimit = 5

// LibraryService exposes the indexed corpus for browsing.
type LibraryService struct {
	store driven.SnapshotStore
}

// NewLibraryService wires a library service to the snapshot store.
func NewLibraryService(store driven.SnapshotStore) *LibraryService {
	return &LibraryService{store: store}
}

// Get retrieves a document by its corpus-relative path. The path is
// reduced to canonical form first, so "./api/auth.md" finds the same
// document as "api/auth.md".
func (s *LibraryService) Get(_ context.Context, docPath string) (domain.Document, error) {
	if strings.TrimSpace(docPath) == "" {
		return domain.Document{}, fmt.Errorf("%w: document path is empty", domain.ErrInvalidInput)
	}

	snapshot, err := s.store.Current()
	if err != nil {
		return domain.Document{}, err
	}

	doc, ok := snapshot.Document(index.NormalisePath(docPath))
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrNotFound, docPath)
	}
	return doc, nil
}

// Related returns documents connected to the given one, strongest
// connection first. A non-positive limit applies DefaultRelatedLimit.
func (s *LibraryService) Related(_ context.Context, docPath string, limit int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(docPath) == "" {
		return nil, fmt.Errorf("%w: document path is empty", domain.ErrInvalidInput)
	}

	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	key := index.NormalisePath(docPath)
	if _, ok := snapshot.Document(key); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, docPath)
	}

	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	hits := snapshot.Related(key, limit)
	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		doc, ok := snapshot.Document(hit.Path)
		if !ok {
			continue
		}
		results = append(results, domain.SearchResult{
			Document: doc,
			Score:    hit.Score,
		})
	}
	return results, nil
}

// List returns a summary of every indexed document in corpus order.
func (s *LibraryService) List(_ context.Context) ([]domain.DocumentSummary, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	docs := snapshot.Documents()
	summaries := make([]domain.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, doc.Summarise())
	}
	return summaries, nil
}

// Categories returns all distinct categories in ascending order, each
// with the number of documents filed under it.
func (s *LibraryService) Categories(_ context.Context) ([]domain.TaxonomyEntry, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	names := snapshot.Categories()
	entries := make([]domain.TaxonomyEntry, len(names))
	for i, name := range names {
		entries[i] = domain.TaxonomyEntry{
			Name:      name,
			Documents: snapshot.CategoryCount(name),
		}
	}
	return entries, nil
}

// Tags returns all distinct tags in ascending order, each with the
// number of documents carrying it.
func (s *LibraryService) Tags(_ context.Context) ([]domain.TaxonomyEntry, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	names := snapshot.Tags()
	entries := make([]domain.TaxonomyEntry, len(names))
	for i, name := range names {
		entries[i] = domain.TaxonomyEntry{
			Name:      name,
			Documents: snapshot.TagCount(name),
		}
	}
	return entries, nil
}

// Stats describes the active snapshot.
func (s *LibraryService) Stats(_ context.Context) (domain.BuildStats, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.BuildStats{}, err
	}
	return snapshot.Stats(), nil
}

package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
	"github.com/custodia-labs/docdex/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers keyword queries from the active snapshot.
type SearchService struct {
	store driven.SnapshotStore
}

// NewSearchService wires a search service to the snapshot store.
func NewSearchService(store driven.SnapshotStore) *SearchService {
	return &SearchService{store: store}
}

// Search performs keyword search across all indexed documents.
func (s *SearchService) Search(
	_ context.Context, query string, filter domain.SearchFilter,
) ([]domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("Raw query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Blank query, nothing to do")
		return []domain.SearchResult{}, nil
	}

	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	if filter.Category != "" {
		logger.Debug("Category filter: %q", filter.Category)
	}
	if len(filter.Tags) > 0 {
		logger.Debug("Tag filter: %v", filter.Tags)
	}

	hits := snapshot.Search(query, filter)
	logger.Debug("Raw results: %d hits", len(hits))

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		doc, ok := snapshot.Document(hit.Path)
		if !ok {
			// Hits come from the same snapshot, so this cannot happen.
			continue
		}
		results = append(results, domain.SearchResult{
			Document: doc,
			Score:    hit.Score,
		})
	}

	logger.Info("Returning %d results", len(results))
	return results, nil
}

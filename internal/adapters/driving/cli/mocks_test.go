package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// mockSearchService implements driving.SearchService for command tests.
type mockSearchService struct {
	results []domain.SearchResult
	err     error

	gotQuery  string
	gotFilter domain.SearchFilter
}

func (m *mockSearchService) Search(
	_ context.Context, query string, filter domain.SearchFilter,
) ([]domain.SearchResult, error) {
	m.gotQuery = query
	m.gotFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockLibraryService implements driving.LibraryService for command tests.
type mockLibraryService struct {
	document   domain.Document
	related    []domain.SearchResult
	summaries  []domain.DocumentSummary
	categories []domain.TaxonomyEntry
	tags       []domain.TaxonomyEntry
	stats      domain.BuildStats
	err        error

	gotPath  string
	gotLimit int
}

func (m *mockLibraryService) Get(_ context.Context, path string) (domain.Document, error) {
	m.gotPath = path
	if m.err != nil {
		return domain.Document{}, m.err
	}
	return m.document, nil
}

func (m *mockLibraryService) Related(
	_ context.Context, path string, limit int,
) ([]domain.SearchResult, error) {
	m.gotPath = path
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.related, nil
}

func (m *mockLibraryService) List(_ context.Context) ([]domain.DocumentSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.summaries, nil
}

func (m *mockLibraryService) Categories(_ context.Context) ([]domain.TaxonomyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *mockLibraryService) Tags(_ context.Context) ([]domain.TaxonomyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tags, nil
}

func (m *mockLibraryService) Stats(_ context.Context) (domain.BuildStats, error) {
	if m.err != nil {
		return domain.BuildStats{}, m.err
	}
	return m.stats, nil
}

// mockIndexOrchestrator implements driving.IndexOrchestrator for command tests.
type mockIndexOrchestrator struct {
	stats domain.BuildStats
	err   error
	calls int
}

func (m *mockIndexOrchestrator) Rebuild(_ context.Context) (domain.BuildStats, error) {
	m.calls++
	if m.err != nil {
		return domain.BuildStats{}, m.err
	}
	return m.stats, nil
}

// mockConfigStore implements driven.ConfigStore for command tests.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	if v, ok := m.values[key].([]string); ok {
		return v
	}
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "" }

// setupTestServices installs mock services with fixture data and marks
// the wiring done so the pre-run hook leaves them alone. The returned
// cleanup restores the previous state.
func setupTestServices() func() {
	oldSearch := searchService
	oldLibrary := libraryService
	oldIndexer := indexOrchestrator
	oldConfig := configStore
	oldWired := wired

	doc := domain.Document{
		Path: "guides/auth.md",
		Body: "# Authentication\n\nUse token based authentication.",
		Metadata: domain.Metadata{
			Title:    "Authentication",
			Category: "guides",
			Tags:     []string{"auth", "security"},
			Summary:  "How to authenticate API calls.",
			Related:  []string{"api/tokens.md"},
		},
	}
	stats := domain.BuildStats{
		SnapshotID: "snap-1",
		BuiltAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Duration:   125 * time.Millisecond,
		Documents:  2,
		Terms:      40,
		Categories: 2,
		Tags:       2,
		Edges:      1,
	}

	searchService = &mockSearchService{
		results: []domain.SearchResult{{Document: doc, Score: 6.5}},
	}
	libraryService = &mockLibraryService{
		document: doc,
		related: []domain.SearchResult{
			{
				Document: domain.Document{
					Path:     "api/tokens.md",
					Metadata: domain.Metadata{Title: "API Tokens", Category: "api"},
				},
				Score: 8,
			},
		},
		summaries: []domain.DocumentSummary{
			{Path: "guides/auth.md", Title: "Authentication", Category: "guides", Tags: []string{"auth", "security"}},
			{Path: "api/tokens.md", Title: "API Tokens", Category: "api"},
		},
		categories: []domain.TaxonomyEntry{
			{Name: "api", Documents: 1},
			{Name: "guides", Documents: 1},
		},
		tags: []domain.TaxonomyEntry{
			{Name: "auth", Documents: 1},
			{Name: "security", Documents: 1},
		},
		stats: stats,
	}
	indexOrchestrator = &mockIndexOrchestrator{stats: stats}
	configStore = nil
	wired = true

	return func() {
		searchService = oldSearch
		libraryService = oldLibrary
		indexOrchestrator = oldIndexer
		configStore = oldConfig
		wired = oldWired
	}
}

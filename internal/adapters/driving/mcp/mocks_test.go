package mcp

import (
	"context"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error

	gotQuery  string
	gotFilter domain.SearchFilter
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	filter domain.SearchFilter,
) ([]domain.SearchResult, error) {
	m.gotQuery = query
	m.gotFilter = filter
	return m.results, m.err
}

// mockLibraryService is a mock implementation of driving.LibraryService.
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
	return m.document, m.err
}

func (m *mockLibraryService) Related(_ context.Context, path string, limit int) ([]domain.SearchResult, error) {
	m.gotPath = path
	m.gotLimit = limit
	return m.related, m.err
}

func (m *mockLibraryService) List(_ context.Context) ([]domain.DocumentSummary, error) {
	return m.summaries, m.err
}

func (m *mockLibraryService) Categories(_ context.Context) ([]domain.TaxonomyEntry, error) {
	return m.categories, m.err
}

func (m *mockLibraryService) Tags(_ context.Context) ([]domain.TaxonomyEntry, error) {
	return m.tags, m.err
}

func (m *mockLibraryService) Stats(_ context.Context) (domain.BuildStats, error) {
	return m.stats, m.err
}

// mockIndexOrchestrator is a mock implementation of driving.IndexOrchestrator.
type mockIndexOrchestrator struct {
	stats domain.BuildStats
	err   error
	calls int
}

func (m *mockIndexOrchestrator) Rebuild(_ context.Context) (domain.BuildStats, error) {
	m.calls++
	return m.stats, m.err
}

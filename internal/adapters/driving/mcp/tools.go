package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// defaultSearchLimit caps search tool results when the caller does not
// ask for a specific count.
const defaultSearchLimit = 10

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query    string   `json:"query" jsonschema:"keywords to search the corpus for"`
	Category string   `json:"category,omitempty" jsonschema:"restrict results to this category"`
	Tags     []string `json:"tags,omitempty" jsonschema:"restrict results to documents carrying every listed tag"`
	Limit    int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_documents and
// get_related_documents tools.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single scored hit.
type SearchResultOutput struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Score    float64  `json:"score"`
}

// DocumentInput is the input schema for the get_document tool.
type DocumentInput struct {
	Path string `json:"path" jsonschema:"corpus-relative path of the document"`
}

// DocumentOutput is the output schema for the get_document tool.
type DocumentOutput struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Body     string   `json:"body"`
}

// RelatedInput is the input schema for the get_related_documents tool.
type RelatedInput struct {
	Path  string `json:"path" jsonschema:"corpus-relative path of the document"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of neighbours to return (default 5)"`
}

// EmptyInput is the input schema for tools that take no arguments.
type EmptyInput struct{}

// TaxonomyOutput is one category or tag value with its document count.
type TaxonomyOutput struct {
	Name      string `json:"name"`
	Documents int    `json:"documents"`
}

// CategoriesOutput is the output schema for the list_categories tool.
type CategoriesOutput struct {
	Categories []TaxonomyOutput `json:"categories"`
	Count      int              `json:"count"`
}

// TagsOutput is the output schema for the list_tags tool.
type TagsOutput struct {
	Tags  []TaxonomyOutput `json:"tags"`
	Count int              `json:"count"`
}

// RebuildOutput is the output schema for the rebuild_index tool.
type RebuildOutput struct {
	SnapshotID string `json:"snapshot_id"`
	Documents  int    `json:"documents"`
	Terms      int    `json:"terms"`
	Skipped    int    `json:"skipped"`
	Duration   string `json:"duration"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search the documentation corpus by keyword, optionally filtered by category or tags",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Fetch a single document by path, including its full body",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_related_documents",
		Description: "List documents related to the given one, best neighbours first",
	}, s.handleRelated)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List every category present in the corpus",
	}, s.handleListCategories)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List every tag present in the corpus",
	}, s.handleListTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rebuild_index",
		Description: "Rescan the corpus and publish a fresh index snapshot",
	}, s.handleRebuild)
}

// handleSearch handles the search_documents tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	filter := domain.SearchFilter{
		Category: input.Category,
		Tags:     input.Tags,
	}

	results, err := s.ports.Search.Search(ctx, input.Query, filter)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return nil, toSearchOutput(results), nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Library.Get(ctx, input.Path)
	if err != nil {
		return nil, DocumentOutput{}, err
	}

	return nil, DocumentOutput{
		Path:     doc.Path,
		Title:    doc.Metadata.Title,
		Category: doc.Metadata.Category,
		Tags:     doc.Metadata.Tags,
		Summary:  doc.Metadata.Summary,
		Body:     doc.Body,
	}, nil
}

// handleRelated handles the get_related_documents tool invocation.
// The library service applies its own default when limit is zero.
func (s *Server) handleRelated(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RelatedInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Library.Related(ctx, input.Path, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, toSearchOutput(results), nil
}

// handleListCategories handles the list_categories tool invocation.
func (s *Server) handleListCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, CategoriesOutput, error) {
	categories, err := s.ports.Library.Categories(ctx)
	if err != nil {
		return nil, CategoriesOutput{}, err
	}

	return nil, CategoriesOutput{
		Categories: toTaxonomyOutput(categories),
		Count:      len(categories),
	}, nil
}

// handleListTags handles the list_tags tool invocation.
func (s *Server) handleListTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, TagsOutput, error) {
	tags, err := s.ports.Library.Tags(ctx)
	if err != nil {
		return nil, TagsOutput{}, err
	}

	return nil, TagsOutput{
		Tags:  toTaxonomyOutput(tags),
		Count: len(tags),
	}, nil
}

// handleRebuild handles the rebuild_index tool invocation.
func (s *Server) handleRebuild(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, RebuildOutput, error) {
	if s.ports.Indexer == nil {
		return nil, RebuildOutput{}, ErrRebuildUnavailable
	}

	stats, err := s.ports.Indexer.Rebuild(ctx)
	if err != nil {
		return nil, RebuildOutput{}, err
	}

	return nil, RebuildOutput{
		SnapshotID: stats.SnapshotID,
		Documents:  stats.Documents,
		Terms:      stats.Terms,
		Skipped:    stats.Skipped,
		Duration:   stats.Duration.String(),
	}, nil
}

// toTaxonomyOutput maps taxonomy entries onto the wire schema. The
// result is never nil so the JSON field marshals as an array.
func toTaxonomyOutput(entries []domain.TaxonomyEntry) []TaxonomyOutput {
	output := make([]TaxonomyOutput, len(entries))
	for i, entry := range entries {
		output[i] = TaxonomyOutput{
			Name:      entry.Name,
			Documents: entry.Documents,
		}
	}
	return output
}

// toSearchOutput maps scored hits onto the wire schema.
func toSearchOutput(results []domain.SearchResult) SearchOutput {
	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			Path:     results[i].Document.Path,
			Title:    results[i].Document.Metadata.Title,
			Category: results[i].Document.Metadata.Category,
			Tags:     results[i].Document.Metadata.Tags,
			Summary:  results[i].Document.Metadata.Summary,
			Score:    results[i].Score,
		}
	}

	return output
}

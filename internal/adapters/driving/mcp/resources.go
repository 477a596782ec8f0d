package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docdex resources.
	uriScheme = "docdex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Listing of every indexed document",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Static resource for index metadata.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "index-stats",
		Description: "Metadata about the current index snapshot",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{+path}",
		Name:        "document-content",
		Description: "Raw markdown body of a specific document",
		MIMEType:    "text/markdown",
	}, s.handleDocumentContentResource)
}

// handleDocumentsResource returns a listing of all indexed documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	summaries, err := s.ports.Library.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		Path     string   `json:"path"`
		Title    string   `json:"title"`
		Category string   `json:"category"`
		Tags     []string `json:"tags,omitempty"`
		Summary  string   `json:"summary,omitempty"`
	}

	infos := make([]docInfo, len(summaries))
	for i, doc := range summaries {
		infos[i] = docInfo{
			Path:     doc.Path,
			Title:    doc.Title,
			Category: doc.Category,
			Tags:     doc.Tags,
			Summary:  doc.Summary,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleStatsResource returns metadata about the current snapshot.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Library.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading index stats: %w", err)
	}

	type statsInfo struct {
		SnapshotID string    `json:"snapshot_id"`
		BuiltAt    time.Time `json:"built_at"`
		Duration   string    `json:"duration"`
		Documents  int       `json:"documents"`
		Terms      int       `json:"terms"`
		Categories int       `json:"categories"`
		Tags       int       `json:"tags"`
		Edges      int       `json:"edges"`
		Skipped    int       `json:"skipped"`
	}

	data, err := json.MarshalIndent(statsInfo{
		SnapshotID: stats.SnapshotID,
		BuiltAt:    stats.BuiltAt,
		Duration:   stats.Duration.String(),
		Documents:  stats.Documents,
		Terms:      stats.Terms,
		Categories: stats.Categories,
		Tags:       stats.Tags,
		Edges:      stats.Edges,
		Skipped:    stats.Skipped,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling index stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentContentResource returns the body of a specific document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the path from a URI like docdex://documents/guides/install.md
	docPath := extractDocumentPath(req.Params.URI)
	if docPath == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Library.Get(ctx, docPath)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting document content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc.Body,
		}},
	}, nil
}

// extractDocumentPath extracts the corpus-relative path from a URI like
// docdex://documents/guides/install.md. Percent-encoded segments are
// decoded so clients may escape spaces.
func extractDocumentPath(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	raw := strings.TrimPrefix(uri, prefix)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

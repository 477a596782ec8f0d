package mcp

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingLibraryService is returned when the library service is not provided.
	ErrMissingLibraryService = errors.New("mcp: library service is required")

	// ErrRebuildUnavailable is returned by the rebuild tool when no
	// index orchestrator was wired into the server.
	ErrRebuildUnavailable = errors.New("mcp: index rebuild is not available on this server")
)

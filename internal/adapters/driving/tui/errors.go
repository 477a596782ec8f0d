package tui

import "errors"

// Sentinel errors returned by Ports.Validate when a required service
// was not wired in.
var (
	ErrMissingSearchService  = errors.New("tui: search service is required")
	ErrMissingLibraryService = errors.New("tui: library service is required")
)

package search

import "errors"

// Sentinel errors the view emits when an operation needs a service
// that was never wired in. They surface as ErrorOccurred messages
// rather than panics so the TUI stays up.
var (
	ErrNoSearchService  = errors.New("search view: no search service wired")
	ErrNoLibraryService = errors.New("search view: no library service wired")
)

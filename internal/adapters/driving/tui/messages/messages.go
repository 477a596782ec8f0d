// Package messages holds the bubbletea messages the docdex TUI passes
// between its update loops. Service calls run in commands and report
// back with one of these types.
package messages

import (
	"github.com/custodia-labs/docdex/internal/core/domain"
)

// SearchCompleted delivers the outcome of a search command. Results
// and Err are mutually exclusive.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// RelatedLoaded delivers the related documents for the document whose
// details panel is open.
type RelatedLoaded struct {
	Path    string
	Results []domain.SearchResult
	Err     error
}

// ErrorOccurred reports a failure no other message covers.
type ErrorOccurred struct {
	Err error
}

// Quit asks the app to shut the program down.
type Quit struct{}

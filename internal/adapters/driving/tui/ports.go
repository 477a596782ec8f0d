package tui

import (
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
)

// Ports bundles the two driving ports the TUI talks to, so callers
// hand the app a single value instead of a parameter list.
type Ports struct {
	// Search answers ranked queries over the snapshot.
	Search driving.SearchService

	// Library serves document lookup, related-document queries and
	// corpus taxonomy.
	Library driving.LibraryService
}

// NewPorts builds a Ports value from the given services.
func NewPorts(search driving.SearchService, library driving.LibraryService) *Ports {
	return &Ports{
		Search:  search,
		Library: library,
	}
}

// Validate reports which required service is missing, if any.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	return nil
}

package mcp

import (
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
)

// Ports bundles the driving ports the MCP server exposes to clients.
type Ports struct {
	// Search answers keyword queries against the current snapshot.
	Search driving.SearchService

	// Library serves documents, relationships and corpus metadata.
	Library driving.LibraryService

	// Indexer rebuilds the snapshot on demand.
	Indexer driving.IndexOrchestrator
}

// Validate reports which required service is missing, if any.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	// Indexer is optional; the rebuild tool reports its absence.
	return nil
}

// Package driving holds the inbound ports of the core: the interfaces
// through which the CLI, the MCP server and the TUI drive the
// application. Their implementations live in internal/core/services.
//
// IndexOrchestrator builds and publishes index snapshots, SearchService
// answers ranked keyword queries, and LibraryService serves document
// lookups, relationships and corpus statistics.
package driving

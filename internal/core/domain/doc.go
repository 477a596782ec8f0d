// Package domain holds the entities everything else is built around.
// It sits at the centre of the hexagon and imports only the standard
// library; every other package depends on domain, never the reverse.
//
// The main types:
//
//   - RawDocument: file bytes and path as read by a connector
//   - Document: the normalised form, metadata defaults applied
//   - Metadata: frontmatter-derived title, category, tags and summary
//   - SearchResult and SearchFilter: a scored query hit and its scope
//   - DocumentSummary and TaxonomyEntry: listing and taxonomy rows
//   - BuildStats: one index build summarised
package domain

package domain

import "time"

// SearchFilter narrows a search to documents matching metadata
// constraints. Filtering happens before any scoring.
type SearchFilter struct {
	// Category, when non-empty, restricts results to documents whose
	// category matches exactly.
	Category string

	// Tags, when non-empty, restricts results to documents carrying
	// every listed tag. Comparison is exact, not case-folded.
	Tags []string
}

// SearchResult represents a single scored hit from a search or a
// related-documents query.
type SearchResult struct {
	// Document is the matched document.
	Document Document

	// Score is the accumulated relevance score.
	Score float64
}

// DocumentSummary is the listing view of a document: metadata without
// the body, for index listings and result tables.
type DocumentSummary struct {
	// Path is the document's unique identifier.
	Path string

	// Title is the document title.
	Title string

	// Category is the document category.
	Category string

	// Tags is the declared tag list.
	Tags []string

	// Summary is the short description.
	Summary string
}

// Summarise reduces a Document to its listing view.
func (d Document) Summarise() DocumentSummary {
	return DocumentSummary{
		Path:     d.Path,
		Title:    d.Metadata.Title,
		Category: d.Metadata.Category,
		Tags:     d.Metadata.Tags,
		Summary:  d.Metadata.Summary,
	}
}

// TaxonomyEntry is one category or tag value together with the number
// of documents carrying it.
type TaxonomyEntry struct {
	// Name is the category or tag value.
	Name string

	// Documents is how many documents carry the value. A document
	// declaring the same tag twice counts once.
	Documents int
}

// BuildStats summarises one completed index build.
type BuildStats struct {
	// SnapshotID identifies the published snapshot.
	SnapshotID string

	// BuiltAt is when the build completed.
	BuiltAt time.Time

	// Duration is the wall-clock build time.
	Duration time.Duration

	// Documents is the number of documents indexed.
	Documents int

	// Terms is the number of distinct tokens in the keyword index.
	Terms int

	// Categories is the number of distinct category values.
	Categories int

	// Tags is the number of distinct tag values.
	Tags int

	// Edges is the total number of relationship edges.
	Edges int

	// Skipped is the number of files excluded by per-file errors.
	Skipped int
}

package domain

import "time"

// Document represents a corpus document after normalisation.
// It is the canonical representation consumed by the index builder
// and returned by lookups.
type Document struct {
	// Path is the unique identifier: slash-separated, relative to the
	// corpus root, with no leading "./" or "/" segments.
	Path string

	// Body is the document text with frontmatter stripped.
	Body string

	// Metadata holds the frontmatter-derived attributes, with
	// defaults applied for fields absent from the source file.
	Metadata Metadata

	// Links lists embedded markdown link targets extracted from the
	// body, as written in the source (not yet normalised). External
	// URLs are excluded at extraction time.
	Links []string

	// ModTime is the file's last modification time. Informational
	// only; no index or query algorithm depends on it.
	ModTime time.Time
}

// Metadata holds the structured attributes of a document.
type Metadata struct {
	// Title is the human-readable title.
	Title string

	// Tags is the declared tag list in declaration order. Duplicates
	// are preserved here; callers that count tags dedupe first.
	Tags []string

	// Category groups documents. Defaults to the parent directory
	// name, or "general" for files at the corpus root.
	Category string

	// Related lists declared paths of related documents, as written
	// in the source file (not yet normalised).
	Related []string

	// Summary is a short description of the document.
	Summary string

	// Extra preserves unrecognised frontmatter keys opaquely.
	// Core algorithms never interpret these values.
	Extra map[string]any
}

// UniqueTags returns the document's tags with duplicates removed,
// preserving first-occurrence order.
func (d Document) UniqueTags() []string {
	if len(d.Metadata.Tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(d.Metadata.Tags))
	unique := make([]string, 0, len(d.Metadata.Tags))
	for _, tag := range d.Metadata.Tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}
	return unique
}

// SharedTagCount returns the size of the tag-set intersection between
// two documents. Tags are deduplicated on both sides before counting,
// so a repeated tag contributes at most once.
func (d Document) SharedTagCount(other Document) int {
	mine := d.UniqueTags()
	if len(mine) == 0 {
		return 0
	}

	theirs := make(map[string]struct{}, len(other.Metadata.Tags))
	for _, tag := range other.UniqueTags() {
		theirs[tag] = struct{}{}
	}

	shared := 0
	for _, tag := range mine {
		if _, ok := theirs[tag]; ok {
			shared++
		}
	}
	return shared
}

// HasTag reports whether the document declares the given tag.
// Comparison is exact, not case-folded.
func (d Document) HasTag(tag string) bool {
	for _, t := range d.Metadata.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

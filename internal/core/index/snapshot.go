package index

import (
	"sort"
	"time"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// Snapshot is one complete, immutable build of the index. All fields
// are populated by Builder.Build before the snapshot is published;
// nothing mutates a snapshot afterwards, so every method is safe for
// concurrent use without locking.
type Snapshot struct {
	id       string
	builtAt  time.Time
	duration time.Duration
	skipped  int

	// documents maps canonical path to the normalised document.
	documents map[string]domain.Document

	// order holds every path sorted lexicographically. It is the
	// deterministic corpus order used to break score ties.
	order []string

	// rank maps path to its position in order.
	rank map[string]int

	// keywords is the inverted index: token to the set of paths
	// containing it.
	keywords map[string]map[string]struct{}

	// categories and tags map taxonomy values to path sets. Empty
	// values are never indexed.
	categories map[string]map[string]struct{}
	tags       map[string]map[string]struct{}

	// categoryNames and tagNames are the distinct taxonomy values,
	// sorted lexicographically at build time.
	categoryNames []string
	tagNames      []string

	// tfidf maps path to term to weight.
	tfidf map[string]map[string]float64

	// relations maps path to its deduplicated neighbour set.
	relations map[string]map[string]struct{}

	// explicit maps path to the normalised targets of its declared
	// related entries, kept for related-documents scoring.
	explicit map[string]map[string]struct{}
}

// ID returns the snapshot's unique identifier.
func (s *Snapshot) ID() string { return s.id }

// BuiltAt returns when the build completed.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Len returns the number of indexed documents.
func (s *Snapshot) Len() int { return len(s.order) }

// Document returns the document at the given canonical path.
func (s *Snapshot) Document(path string) (domain.Document, bool) {
	doc, ok := s.documents[path]
	return doc, ok
}

// Documents returns every document in corpus order.
func (s *Snapshot) Documents() []domain.Document {
	docs := make([]domain.Document, 0, len(s.order))
	for _, p := range s.order {
		docs = append(docs, s.documents[p])
	}
	return docs
}

// Paths returns every canonical path in corpus order.
func (s *Snapshot) Paths() []string {
	paths := make([]string, len(s.order))
	copy(paths, s.order)
	return paths
}

// HasKeyword reports whether the document at path contains the token.
func (s *Snapshot) HasKeyword(path, token string) bool {
	set, ok := s.keywords[token]
	if !ok {
		return false
	}
	_, ok = set[path]
	return ok
}

// Weight returns the TF-IDF weight of term within the document at
// path, or zero when the term does not occur there.
func (s *Snapshot) Weight(path, term string) float64 {
	weights, ok := s.tfidf[path]
	if !ok {
		return 0
	}
	return weights[term]
}

// Categories returns the distinct category values, sorted.
func (s *Snapshot) Categories() []string {
	names := make([]string, len(s.categoryNames))
	copy(names, s.categoryNames)
	return names
}

// Tags returns the distinct tag values, sorted.
func (s *Snapshot) Tags() []string {
	names := make([]string, len(s.tagNames))
	copy(names, s.tagNames)
	return names
}

// CategoryCount returns how many documents carry the given category.
func (s *Snapshot) CategoryCount(name string) int {
	return len(s.categories[name])
}

// TagCount returns how many documents carry the given tag.
func (s *Snapshot) TagCount(name string) int {
	return len(s.tags[name])
}

// Neighbours returns the relationship set of the document at path, in
// corpus order. The result is empty both for unknown paths and for
// documents without relationships; callers that must distinguish the
// two check Document first.
func (s *Snapshot) Neighbours(path string) []string {
	set, ok := s.relations[path]
	if !ok {
		return nil
	}

	neighbours := make([]string, 0, len(set))
	for p := range set {
		neighbours = append(neighbours, p)
	}
	s.sortByRank(neighbours)
	return neighbours
}

// HasExplicit reports whether source's declared related entries
// include target (after path normalisation).
func (s *Snapshot) HasExplicit(source, target string) bool {
	set, ok := s.explicit[source]
	if !ok {
		return false
	}
	_, ok = set[target]
	return ok
}

// Stats summarises the snapshot for diagnostics.
func (s *Snapshot) Stats() domain.BuildStats {
	edges := 0
	for _, set := range s.relations {
		edges += len(set)
	}

	return domain.BuildStats{
		SnapshotID: s.id,
		BuiltAt:    s.builtAt,
		Duration:   s.duration,
		Documents:  len(s.order),
		Terms:      len(s.keywords),
		Categories: len(s.categoryNames),
		Tags:       len(s.tagNames),
		Edges:      edges,
		Skipped:    s.skipped,
	}
}

// sortByRank orders paths by their position in the corpus order.
// Unknown paths sort last; they cannot occur in a well-formed
// snapshot.
func (s *Snapshot) sortByRank(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return s.rankOf(paths[i]) < s.rankOf(paths[j])
	})
}

func (s *Snapshot) rankOf(path string) int {
	if r, ok := s.rank[path]; ok {
		return r
	}
	return len(s.order)
}

package index

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// Builder accumulates normalised documents and assembles them into a
// Snapshot. A Builder is used for exactly one build: collect every
// document first, then call Build once. It is not safe for concurrent
// use; the indexer drains the connector before populating it.
type Builder struct {
	started time.Time
	docs    map[string]domain.Document
	skipped int
}

// NewBuilder creates a Builder and starts the build clock.
func NewBuilder() *Builder {
	return &Builder{
		started: time.Now(),
		docs:    make(map[string]domain.Document),
	}
}

// Add registers a document for the build. The path is reduced to its
// canonical form; adding a second document under the same path
// replaces the first. A document whose path normalises to nothing is
// counted as skipped.
func (b *Builder) Add(doc domain.Document) {
	doc.Path = NormalisePath(doc.Path)
	if doc.Path == "" {
		b.skipped++
		return
	}
	b.docs[doc.Path] = doc
}

// RecordSkipped notes files the connector could not deliver.
func (b *Builder) RecordSkipped(n int) {
	b.skipped += n
}

// Len returns the number of documents collected so far.
func (b *Builder) Len() int {
	return len(b.docs)
}

// Build assembles the complete snapshot: corpus order, keyword index,
// TF-IDF weights, taxonomy indices, and the relationship graph. The
// returned snapshot is fully populated before it is handed to the
// caller; nothing mutates it afterwards.
func (b *Builder) Build() *Snapshot {
	order := make([]string, 0, len(b.docs))
	for p := range b.docs {
		order = append(order, p)
	}
	sort.Strings(order)

	rank := make(map[string]int, len(order))
	for i, p := range order {
		rank[p] = i
	}

	keywords := make(map[string]map[string]struct{})
	counts := make(map[string]map[string]int, len(order))
	totals := make(map[string]int, len(order))

	for _, p := range order {
		doc := b.docs[p]
		tokens := Tokenize(indexableText(doc))
		termCount, total := termCounts(tokens)
		counts[p] = termCount
		totals[p] = total
		for term := range termCount {
			addToSet(keywords, term, p)
		}
	}

	categories := make(map[string]map[string]struct{})
	tags := make(map[string]map[string]struct{})
	for _, p := range order {
		doc := b.docs[p]
		if c := doc.Metadata.Category; c != "" {
			addToSet(categories, c, p)
		}
		for _, t := range doc.UniqueTags() {
			if t != "" {
				addToSet(tags, t, p)
			}
		}
	}

	relations, explicit := buildRelationships(b.docs, order)

	return &Snapshot{
		id:            uuid.NewString(),
		builtAt:       time.Now(),
		duration:      time.Since(b.started),
		skipped:       b.skipped,
		documents:     b.docs,
		order:         order,
		rank:          rank,
		keywords:      keywords,
		categories:    categories,
		tags:          tags,
		categoryNames: sortedKeys(categories),
		tagNames:      sortedKeys(tags),
		tfidf:         computeTFIDF(order, counts, totals, keywords),
		relations:     relations,
		explicit:      explicit,
	}
}

// indexableText is the text a document exposes to the keyword and
// TF-IDF indices: title, summary, and body.
func indexableText(doc domain.Document) string {
	return doc.Metadata.Title + " " + doc.Metadata.Summary + " " + doc.Body
}

func addToSet(m map[string]map[string]struct{}, key, member string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]struct{})
		m[key] = set
	}
	set[member] = struct{}{}
}

func sortedKeys(m map[string]map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package index

import "github.com/custodia-labs/docdex/internal/core/domain"

// sharedTagThreshold is the minimum tag-set intersection that creates
// a symmetric relationship edge. A single shared tag is too weak a
// signal to link two documents.
const sharedTagThreshold = 2

// buildRelationships derives the relationship graph from the collected
// documents. Four rules create edges:
//
//  1. A declared related entry resolving to an existing document is a
//     directed edge from declarer to target.
//  2. Two documents with the same non-empty category are linked both
//     ways.
//  3. Two documents sharing at least sharedTagThreshold distinct tags
//     are linked both ways.
//  4. An embedded markdown link resolving to an existing document is a
//     directed edge from the linking document to the target.
//
// Edges are deduplicated per source and never point at the source
// itself. No rule provenance or weight is stored; relationship
// strength is recomputed at query time.
//
// The pairwise pass is O(N^2) in corpus size, which holds up to a few
// thousand documents.
func buildRelationships(
	docs map[string]domain.Document,
	order []string,
) (relations, explicit map[string]map[string]struct{}) {
	relations = make(map[string]map[string]struct{})
	explicit = make(map[string]map[string]struct{})

	addEdge := func(from, to string) {
		if from == to {
			return
		}
		addToSet(relations, from, to)
	}

	// Rules 1 and 4: directed edges from declarations and embedded
	// links, kept only when the target exists in the corpus.
	for _, p := range order {
		doc := docs[p]

		for _, declared := range doc.Metadata.Related {
			target := NormalisePath(declared)
			if target == "" {
				continue
			}
			addToSet(explicit, p, target)
			if _, ok := docs[target]; ok {
				addEdge(p, target)
			}
		}

		for _, link := range doc.Links {
			target := NormalisePath(link)
			if target == "" {
				continue
			}
			if _, ok := docs[target]; ok {
				addEdge(p, target)
			}
		}
	}

	// Rules 2 and 3: symmetric edges from shared taxonomy, checked
	// over every document pair.
	for i, pi := range order {
		di := docs[pi]
		for _, pj := range order[i+1:] {
			dj := docs[pj]

			sameCategory := di.Metadata.Category != "" &&
				di.Metadata.Category == dj.Metadata.Category
			if sameCategory || di.SharedTagCount(dj) >= sharedTagThreshold {
				addEdge(pi, pj)
				addEdge(pj, pi)
			}
		}
	}

	return relations, explicit
}

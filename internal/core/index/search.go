package index

import (
	"sort"
	"strings"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// Scoring weights for the search signals. Title matches dominate
// keyword hits; tag matches sit between the two.
const (
	keywordHitScore = 1.0
	titleMatchScore = 5.0
	tagMatchScore   = 3.0
)

// Hit is one scored entry in a query result.
type Hit struct {
	// Path identifies the matched document.
	Path string

	// Score is the accumulated relevance score.
	Score float64
}

// Search ranks documents against a free-text query. Filtering precedes
// scoring: with a category filter only documents of exactly that
// category are considered, and with required tags only documents
// carrying every one of them. The query is tokenized the same way as
// document text; a query yielding no tokens produces no results.
//
// Each surviving document accumulates, per query token:
//   - keywordHitScore when the token is in its keyword entry,
//   - its TF-IDF weight for the token,
//   - titleMatchScore when the token is a case-insensitive substring
//     of the title,
//   - tagMatchScore when the token is a case-insensitive substring of
//     any of its tags.
//
// Documents scoring zero or below are dropped. Results order by
// descending score; ties break on corpus order, so an unchanged corpus
// always ranks identically.
func (s *Snapshot) Search(query string, filter domain.SearchFilter) []Hit {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var hits []Hit
	for _, path := range s.order {
		doc := s.documents[path]
		if !matchesFilter(doc, filter) {
			continue
		}

		if score := s.scoreDocument(doc, tokens); score > 0 {
			hits = append(hits, Hit{Path: path, Score: score})
		}
	}

	s.sortHits(hits)
	return hits
}

// matchesFilter applies the pre-scoring constraints: exact category
// equality and presence of every required tag.
func matchesFilter(doc domain.Document, filter domain.SearchFilter) bool {
	if filter.Category != "" && doc.Metadata.Category != filter.Category {
		return false
	}
	for _, required := range filter.Tags {
		if !doc.HasTag(required) {
			return false
		}
	}
	return true
}

func (s *Snapshot) scoreDocument(doc domain.Document, tokens []string) float64 {
	title := strings.ToLower(doc.Metadata.Title)

	var score float64
	for _, tok := range tokens {
		if s.HasKeyword(doc.Path, tok) {
			score += keywordHitScore
		}
		score += s.Weight(doc.Path, tok)
		if strings.Contains(title, tok) {
			score += titleMatchScore
		}
		for _, tag := range doc.Metadata.Tags {
			if strings.Contains(strings.ToLower(tag), tok) {
				score += tagMatchScore
				break
			}
		}
	}
	return score
}

// sortHits orders hits by descending score, breaking ties on corpus
// order.
func (s *Snapshot) sortHits(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return s.rankOf(hits[i].Path) < s.rankOf(hits[j].Path)
	})
}

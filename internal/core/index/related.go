package index

// Scoring weights for relationship strength. An explicit declaration
// is the strongest signal, ahead of a shared category; every distinct
// shared tag adds one point on top of the base.
const (
	relatedBaseScore     = 1.0
	sameCategoryScore    = 2.0
	explicitRelatedScore = 5.0
)

// Related ranks the precomputed neighbours of the document at path by
// relationship strength. Every neighbour starts at relatedBaseScore
// and gains sameCategoryScore for a matching category, one point per
// distinct shared tag, and explicitRelatedScore when the source
// document declares it in its related entries. Results order by
// descending score with ties broken on corpus order, truncated to
// limit when limit is positive.
//
// An unknown path and a document without relationships both yield an
// empty result here; callers that must distinguish them check
// Document first.
func (s *Snapshot) Related(path string, limit int) []Hit {
	source, ok := s.documents[path]
	if !ok {
		return nil
	}

	neighbours := s.relations[path]
	if len(neighbours) == 0 {
		return nil
	}

	hits := make([]Hit, 0, len(neighbours))
	for n := range neighbours {
		neighbour := s.documents[n]

		score := relatedBaseScore
		if neighbour.Metadata.Category == source.Metadata.Category {
			score += sameCategoryScore
		}
		score += float64(source.SharedTagCount(neighbour))
		if s.HasExplicit(path, n) {
			score += explicitRelatedScore
		}

		hits = append(hits, Hit{Path: n, Score: score})
	}

	s.sortHits(hits)

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

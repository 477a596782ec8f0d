package index

import "math"

// computeTFIDF derives a term weight per document: term frequency
// (occurrences over total tokens in the document) multiplied by the
// log of inverse document frequency (corpus size over the number of
// documents containing the term). A term present in every document
// weighs zero; rare terms weigh most. Weights are recomputed from
// scratch on every build.
func computeTFIDF(
	order []string,
	counts map[string]map[string]int,
	totals map[string]int,
	keywords map[string]map[string]struct{},
) map[string]map[string]float64 {
	n := float64(len(order))

	weights := make(map[string]map[string]float64, len(order))
	for _, p := range order {
		total := totals[p]
		docWeights := make(map[string]float64, len(counts[p]))
		if total > 0 {
			for term, count := range counts[p] {
				tf := float64(count) / float64(total)
				df := float64(len(keywords[term]))
				docWeights[term] = tf * math.Log(n/df)
			}
		}
		weights[p] = docWeights
	}
	return weights
}

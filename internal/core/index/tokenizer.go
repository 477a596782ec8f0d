package index

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest token admitted to the keyword and
// TF-IDF indices, measured in runes. Runs of two characters or fewer
// carry almost no signal ("a", "of", "is") and are discarded.
const minTokenLength = 3

// Tokenize splits text into lowercase alphanumeric runs and keeps
// tokens of at least minTokenLength runes. Query strings and document
// text go through the same function so index-time and query-time
// tokens always agree.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var tokens []string
	var run strings.Builder
	runLen := 0
	flush := func() {
		if runLen >= minTokenLength {
			tokens = append(tokens, run.String())
		}
		run.Reset()
		runLen = 0
	}

	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			run.WriteRune(r)
			runLen++
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// termCounts tallies token occurrences and the total token count for
// one document's text. The total counts every occurrence, not the
// number of distinct terms.
func termCounts(tokens []string) (counts map[string]int, total int) {
	counts = make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts, len(tokens)
}

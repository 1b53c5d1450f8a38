// Package keywords extracts a frequency-ranked keyword list from a single
// document's text.
package keywords

import (
	"sort"

	"newsbrief/internal/textproc"
)

const (
	// DefaultMinLength is the minimum token length for a keyword candidate.
	DefaultMinLength = 3
	// DefaultMaxCount caps the number of keywords per document.
	DefaultMaxCount = 15
)

// Extract returns up to maxCount distinct lemmatized keywords ranked by
// descending in-document frequency. Stopwords, punctuation and purely
// numeric tokens are excluded; ties are broken by first occurrence so the
// ordering is stable. Empty input yields an empty list.
func Extract(text string, minLength, maxCount int) []string {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, tok := range textproc.Tokenize(text) {
		if textproc.IsStopword(tok) || textproc.IsNumeric(tok) {
			continue
		}
		if len([]rune(tok)) < minLength {
			continue
		}
		lemma := textproc.Lemmatize(tok)
		if _, seen := counts[lemma]; !seen {
			firstSeen[lemma] = len(order)
			order = append(order, lemma)
		}
		counts[lemma]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstSeen[a] < firstSeen[b]
	})

	if len(order) > maxCount {
		order = order[:maxCount]
	}
	return order
}

// Package summary builds extractive summaries: the highest-scoring sentences
// of a document, emitted in their original order.
package summary

import (
	"sort"
	"strings"

	"newsbrief/internal/textproc"
)

// DefaultSentenceCount is the target summary length in sentences.
const DefaultSentenceCount = 3

// Summarize picks the maxSentences highest-scoring sentences and joins them
// with single spaces, preserving source order. Documents with no more
// sentences than the target come back unchanged; zero sentences yield "".
//
// A sentence scores the sum of its words' corpus frequencies divided by its
// word count, so long sentences get no free advantage.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultSentenceCount
	}

	sentences := textproc.SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= maxSentences {
		return text
	}

	freq := textproc.WordFrequencies(text)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		tokens := textproc.Tokenize(sentence)
		if len(tokens) == 0 {
			ranked = append(ranked, scored{index: i})
			continue
		}
		sum := 0
		for _, tok := range tokens {
			if textproc.IsAlpha(tok) {
				sum += freq[tok]
			}
		}
		ranked = append(ranked, scored{index: i, score: float64(sum) / float64(len(tokens))})
	}

	// Highest score first; equal scores keep the earlier sentence.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	top := make([]int, 0, maxSentences)
	for _, s := range ranked[:maxSentences] {
		top = append(top, s.index)
	}
	// Reorder by position in the source text, never by score.
	sort.Ints(top)

	parts := make([]string, 0, len(top))
	for _, idx := range top {
		parts = append(parts, sentences[idx])
	}
	return strings.Join(parts, " ")
}

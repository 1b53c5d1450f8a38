// Package sentiment computes a bounded lexical polarity score. No external
// classifier: a fixed positive set and a fixed negative set are counted over
// the document's alphabetic tokens.
package sentiment

import "newsbrief/internal/textproc"

var positiveWords = wordSet(
	"good", "great", "excellent", "positive", "amazing", "wonderful",
	"fantastic", "terrific", "outstanding", "superb", "brilliant",
	"success", "successful", "beneficial", "advantage", "innovative",
)

var negativeWords = wordSet(
	"bad", "terrible", "poor", "negative", "awful", "horrible",
	"disappointing", "failure", "failed", "problem", "disaster",
	"crisis", "dangerous", "threat", "risk", "concern",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Score returns (positives − negatives) / (positives + negatives) over the
// text's alphabetic tokens, which is always in [-1, 1]. Text matching
// neither set scores 0. The score is not normalized by document length.
func Score(text string) float64 {
	var pos, neg int
	for _, tok := range textproc.Tokenize(text) {
		if !textproc.IsAlpha(tok) {
			continue
		}
		if _, ok := positiveWords[tok]; ok {
			pos++
			continue
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return 0.0
	}
	return float64(pos-neg) / float64(total)
}

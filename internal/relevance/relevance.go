// Package relevance scores documents against reader preferences and builds
// the ordered, category-partitioned selection a digest is rendered from.
package relevance

import (
	"strings"

	"newsbrief/internal/news"
	"newsbrief/internal/reader"
)

// maxRawScore is the fixed normalization ceiling for the weighted sum:
// 1.0 (source) + 1.0 (category) + 1.5 (interests) + the 0.5 penalty margin.
const maxRawScore = 4.0

// Score combines a document's derived attributes with one reader's stated
// preferences into a normalized [0,1] relevance value:
//
//	+1.0 when the source is preferred (exact match)
//	+1.0 when the category is preferred (exact match)
//	+min(matches/len(interests), 1) * 1.5 for interest overlap
//	-0.5 when any excluded keyword matches (the penalty does not stack)
//
// Interest and exclusion matching is case-insensitive substring matching of
// the query term inside the keyword. A reader with no interests simply
// contributes zero from that term.
func Score(doc *news.Document, profile *reader.Profile) float64 {
	score := 0.0

	for _, source := range profile.PreferredSources {
		if source == doc.Source {
			score += 1.0
			break
		}
	}

	for _, category := range profile.PreferredCategories {
		if category == doc.Category {
			score += 1.0
			break
		}
	}

	if len(profile.Interests) > 0 {
		matches := countKeywordMatches(doc.Keywords, profile.Interests)
		if matches > 0 {
			overlap := float64(matches) / float64(len(profile.Interests))
			if overlap > 1.0 {
				overlap = 1.0
			}
			score += overlap * 1.5
		}
	}

	if countKeywordMatches(doc.Keywords, profile.ExcludedKeywords) > 0 {
		score -= 0.5
	}

	normalized := score / maxRawScore
	if normalized < 0.0 {
		return 0.0
	}
	if normalized > 1.0 {
		return 1.0
	}
	return normalized
}

// ScoreForReader computes the reader's relevance score and writes it into
// the document's relevance map. Recomputing with the same inputs yields the
// same value, so the write is idempotent.
func ScoreForReader(doc *news.Document, profile *reader.Profile) float64 {
	score := Score(doc, profile)
	doc.SetRelevance(profile.ID, score)
	return score
}

// ScoreAll scores every document in the batch for one reader.
func ScoreAll(docs []*news.Document, profile *reader.Profile) {
	for _, doc := range docs {
		ScoreForReader(doc, profile)
	}
}

// countKeywordMatches counts document keywords containing any query term,
// case-insensitive.
func countKeywordMatches(keywords, queries []string) int {
	if len(keywords) == 0 || len(queries) == 0 {
		return 0
	}
	matches := 0
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		for _, q := range queries {
			if q == "" {
				continue
			}
			if strings.Contains(kwLower, strings.ToLower(q)) {
				matches++
				break
			}
		}
	}
	return matches
}

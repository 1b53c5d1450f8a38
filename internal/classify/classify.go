// Package classify assigns each document one category from a closed set by
// lexicon overlap against its extracted keywords.
package classify

import "newsbrief/internal/news"

// Category pairs a category name with its characteristic terms. The slice
// order of the default table is significant: at equal scores the category
// declared first wins, which keeps classification reproducible.
type Category struct {
	Name  string
	Terms map[string]struct{}
}

// Classifier scores documents against an ordered category table.
type Classifier struct {
	categories []Category
}

// NewClassifier builds a classifier over the given table. A nil table means
// the default lexicons.
func NewClassifier(categories []Category) *Classifier {
	if categories == nil {
		categories = DefaultCategories()
	}
	return &Classifier{categories: categories}
}

// Categorize scores each category by counting the document keywords present
// verbatim in its lexicon and returns the strictly best one. A zero maximum
// falls back to the catch-all category. Deterministic for a given keyword
// list and table.
func (c *Classifier) Categorize(keywords []string) string {
	best := news.CategoryGeneral
	bestScore := 0
	for _, cat := range c.categories {
		score := 0
		for _, kw := range keywords {
			if _, ok := cat.Terms[kw]; ok {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat.Name
		}
	}
	return best
}

// Names returns the category names in definition order.
func (c *Classifier) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

func terms(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// DefaultCategories returns the built-in category table. The lexicons are
// small curated term sets; order defines the tie-break.
func DefaultCategories() []Category {
	return []Category{
		{Name: "technology", Terms: terms(
			"tech", "technology", "ai", "artificial", "intelligence", "software",
			"app", "application", "computer", "digital", "internet", "web",
			"cyber", "security", "data", "analytics", "cloud", "blockchain",
			"programming", "algorithm", "mobile", "smartphone", "device",
			"hardware", "robot", "automation", "startup", "innovation",
			"computing", "virtual", "augmented", "reality",
		)},
		{Name: "business", Terms: terms(
			"business", "company", "corporation", "market", "stock", "finance",
			"economy", "economic", "investment", "investor", "profit", "revenue",
			"startup", "entrepreneur", "ceo", "executive", "management", "strategy",
			"acquisition", "merger", "venture", "capital", "funding", "growth",
			"industry", "sector", "commercial", "trade", "banking", "financial",
		)},
		{Name: "politics", Terms: terms(
			"politics", "political", "government", "election", "campaign", "vote",
			"voter", "president", "congress", "senate", "house", "representative",
			"democrat", "republican", "liberal", "conservative", "policy", "law",
			"legislation", "regulation", "parliament", "minister", "cabinet",
			"leader", "party", "candidate", "bill", "diplomat", "foreign", "nation",
		)},
		{Name: "entertainment", Terms: terms(
			"entertainment", "movie", "film", "cinema", "actor", "actress", "star",
			"celebrity", "music", "song", "album", "concert", "perform", "singer",
			"band", "television", "tv", "show", "series", "episode", "streaming",
			"award", "festival", "director", "producer", "studio", "hollywood",
			"game", "gaming", "theater", "stage", "comedy", "drama",
		)},
		{Name: "health", Terms: terms(
			"health", "medical", "medicine", "doctor", "hospital", "patient",
			"disease", "condition", "treatment", "therapy", "drug", "research",
			"study", "scientist", "healthcare", "mental", "physical", "fitness",
			"exercise", "diet", "nutrition", "wellness", "healthy", "vaccine",
			"virus", "pandemic", "epidemic", "public", "emergency", "care",
		)},
		{Name: "science", Terms: terms(
			"science", "scientific", "research", "study", "discovery", "scientist",
			"experiment", "laboratory", "theory", "hypothesis", "physics", "chemistry",
			"biology", "astronomy", "space", "planet", "star", "galaxy", "universe",
			"climate", "environment", "energy", "renewable", "sustainable", "species",
			"evolution", "genetic", "dna", "molecule", "atom", "particle",
		)},
		{Name: "sports", Terms: terms(
			"sport", "sports", "game", "match", "player", "team", "coach", "league",
			"championship", "tournament", "competition", "athlete", "olympic", "medal",
			"football", "soccer", "baseball", "basketball", "tennis", "golf", "racing",
			"formula", "hockey", "rugby", "cricket", "boxing", "swimming", "track",
			"field", "fitness", "stadium", "fan", "victory", "defeat",
		)},
		{Name: "world", Terms: terms(
			"world", "international", "global", "foreign", "country", "nation",
			"war", "conflict", "peace", "military", "army", "troops", "treaty",
			"agreement", "diplomat", "embassy", "ambassador", "border", "refugee",
			"immigration", "trade", "sanction", "united", "nations", "europe",
			"asia", "africa", "america", "middle", "east", "crisis",
		)},
		{Name: "general", Terms: terms(
			"news", "report", "update", "information", "event", "development",
			"situation", "issue", "matter", "topic", "story", "article", "coverage",
			"press", "media", "daily", "weekly", "monthly", "latest", "breaking",
			"current", "today", "yesterday", "tomorrow", "week", "month", "year",
		)},
	}
}

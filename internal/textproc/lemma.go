package textproc

import "strings"

// Irregular plurals that the suffix rules below would mangle.
var irregularLemmas = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
	"lives":    "life",
	"wives":    "wife",
	"knives":   "knife",
	"leaves":   "leaf",
	"shelves":  "shelf",
	"media":    "medium",
	"data":     "data",
	"analyses": "analysis",
	"crises":   "crisis",
	"indices":  "index",
	"matrices": "matrix",
}

// Words ending in "s" that are not plural forms.
var notPlural = map[string]struct{}{
	"news": {}, "bus": {}, "gas": {}, "virus": {}, "campus": {},
	"analysis": {}, "crisis": {}, "basis": {}, "series": {}, "species": {},
	"physics": {}, "economics": {}, "politics": {}, "athletics": {},
	"mathematics": {}, "always": {}, "perhaps": {}, "besides": {},
	"business": {}, "congress": {}, "process": {}, "access": {},
	"progress": {}, "success": {}, "class": {}, "press": {}, "tennis": {},
	"chaos": {}, "status": {}, "focus": {}, "bonus": {}, "is": {}, "as": {},
	"its": {}, "this": {}, "us": {}, "plus": {}, "various": {},
}

// Lemmatize reduces a lowercased token to its dictionary base form using a
// small set of English noun suffix rules. Words the rules do not cover pass
// through unchanged.
func Lemmatize(token string) string {
	if token == "" {
		return token
	}
	if lemma, ok := irregularLemmas[token]; ok {
		return lemma
	}
	if _, ok := notPlural[token]; ok {
		return token
	}
	if !strings.HasSuffix(token, "s") || len(token) < 4 {
		return token
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		// companies -> company
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		// businesses -> business
		return token[:len(token)-2]
	case strings.HasSuffix(token, "xes"), strings.HasSuffix(token, "zes"),
		strings.HasSuffix(token, "ches"), strings.HasSuffix(token, "shes"):
		// boxes -> box, matches -> match
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ss"), strings.HasSuffix(token, "us"),
		strings.HasSuffix(token, "is"):
		return token
	default:
		// markets -> market
		return token[:len(token)-1]
	}
}

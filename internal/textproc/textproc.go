// Package textproc provides the text normalization primitives shared by the
// whole pipeline: tokenization, stopword filtering, lemmatization, sentence
// splitting and word-frequency tables. Everything here is deterministic and
// side-effect free.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText strips HTML tags and collapses whitespace runs.
func CleanText(text string) string {
	text = htmlTagRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize lowercases text and splits it into maximal letter/digit runs.
// Punctuation never becomes a token, so an empty or non-linguistic input
// yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ToLower(text)

	var tokens []string
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}

// Normalize tokenizes text and keeps only non-stopword alphabetic tokens,
// each reduced to its lemma. The result preserves token order.
func Normalize(text string) []string {
	var out []string
	for _, tok := range Tokenize(text) {
		if IsStopword(tok) || !IsAlpha(tok) {
			continue
		}
		out = append(out, Lemmatize(tok))
	}
	return out
}

// IsAlpha reports whether the token consists of letters only.
func IsAlpha(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether the token consists of digits only.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// SplitSentences splits text after sentence-boundary punctuation ('.', '!',
// '?') followed by whitespace. Text without a terminator comes back as a
// single sentence; empty input yields nil.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// WordFrequencies counts lowercased alphabetic tokens excluding stopwords.
// Tokens are not lemmatized here; the table mirrors the raw wording used by
// the summarizer's sentence scoring.
func WordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range Tokenize(text) {
		if !IsAlpha(tok) || IsStopword(tok) {
			continue
		}
		freq[tok]++
	}
	return freq
}

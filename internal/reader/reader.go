// Package reader holds subscriber profiles and their file-backed store.
// Profiles are read-only inputs to the scoring pipeline; management happens
// here, outside the core.
package reader

// Profile stores one subscriber's identity and content preferences.
type Profile struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Interests           []string `json:"interests"`
	PreferredSources    []string `json:"preferred_sources"`
	PreferredCategories []string `json:"preferred_categories"`
	ExcludedKeywords    []string `json:"excluded_keywords"`
	Frequency           string   `json:"newsletter_frequency"`
	MaxArticles         int      `json:"max_articles_per_newsletter"`
	Language            string   `json:"language"`
	Location            string   `json:"location,omitempty"`
	Persona             string   `json:"persona,omitempty"`
}

// DefaultMaxArticles caps a digest when the profile does not say otherwise.
const DefaultMaxArticles = 10

// DigestLimit returns the profile's digest size, falling back to the
// default for unset or non-positive values.
func (p *Profile) DigestLimit() int {
	if p.MaxArticles <= 0 {
		return DefaultMaxArticles
	}
	return p.MaxArticles
}

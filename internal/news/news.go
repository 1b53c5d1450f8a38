// Package news defines the document model flowing through the digest
// pipeline. A document is created once per ingested feed entry and enriched
// in place: each pipeline stage writes exactly one derived field and never
// touches another stage's output.
package news

import (
	"sync"
	"time"
)

// CategoryGeneral is the catch-all category a document starts with and falls
// back to when classification finds no signal.
const CategoryGeneral = "general"

// Document is one ingested news item plus the attributes derived for it.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
	Author    string    `json:"author,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Published time.Time `json:"published_date"`
	Content   string    `json:"content"`

	// Derived fields, one writer each.
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
	Sentiment float64  `json:"sentiment_score"`
	Summary   string   `json:"summary,omitempty"`

	// relevance maps reader id to a score in [0,1]. Absence means "not yet
	// scored", not zero. Writes are serialized so readers can be scored
	// concurrently against the same batch.
	mu        sync.RWMutex
	relevance map[string]float64
}

// New builds a document with the catch-all category and no derived fields.
func New(id, title, url, source string, published time.Time, content string) *Document {
	return &Document{
		ID:        id,
		Title:     title,
		URL:       url,
		Source:    source,
		Published: published,
		Content:   content,
		Category:  CategoryGeneral,
	}
}

// SetRelevance records (or idempotently recomputes) the relevance score for
// one reader.
func (d *Document) SetRelevance(readerID string, score float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.relevance == nil {
		d.relevance = make(map[string]float64)
	}
	d.relevance[readerID] = score
}

// RelevanceFor returns the reader's score and whether the document has been
// scored for that reader at all.
func (d *Document) RelevanceFor(readerID string) (float64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	score, ok := d.relevance[readerID]
	return score, ok
}

// RelevanceScores returns a copy of the relevance map.
func (d *Document) RelevanceScores() map[string]float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]float64, len(d.relevance))
	for id, score := range d.relevance {
		out[id] = score
	}
	return out
}

package relevance

import (
	"sort"

	"newsbrief/internal/news"
	"newsbrief/internal/reader"
)

// TopStoryCount is the size of the distinguished lead section.
const TopStoryCount = 3

// Section groups the selected documents of one category.
type Section struct {
	Category  string
	Documents []*news.Document
}

// Selection is the per-reader ordered view handed to rendering.
type Selection struct {
	// Documents sorted by descending relevance, trimmed to the reader's
	// digest limit.
	Documents []*news.Document
	// Sections partitions Documents by category in first-seen order.
	Sections []Section
	// TopStories is the lead subset: the highest-relevance documents of the
	// whole selection, before category partitioning.
	TopStories []*news.Document
}

// Select retains the documents scored for the reader, orders them by
// descending relevance (fetch order breaks ties), trims to the reader's
// digest limit, and partitions the result by category.
func Select(docs []*news.Document, profile *reader.Profile) Selection {
	scored := make([]*news.Document, 0, len(docs))
	for _, doc := range docs {
		if _, ok := doc.RelevanceFor(profile.ID); ok {
			scored = append(scored, doc)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, _ := scored[i].RelevanceFor(profile.ID)
		b, _ := scored[j].RelevanceFor(profile.ID)
		return a > b
	})

	if limit := profile.DigestLimit(); len(scored) > limit {
		scored = scored[:limit]
	}

	top := scored
	if len(top) > TopStoryCount {
		top = top[:TopStoryCount]
	}

	return Selection{
		Documents:  scored,
		Sections:   groupByCategory(scored),
		TopStories: top,
	}
}

// groupByCategory partitions documents by category, preserving the order in
// which categories first appear.
func groupByCategory(docs []*news.Document) []Section {
	index := make(map[string]int)
	var sections []Section
	for _, doc := range docs {
		i, ok := index[doc.Category]
		if !ok {
			i = len(sections)
			index[doc.Category] = i
			sections = append(sections, Section{Category: doc.Category})
		}
		sections[i].Documents = append(sections[i].Documents, doc)
	}
	return sections
}

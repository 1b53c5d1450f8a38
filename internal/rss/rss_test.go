package rss

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	content := `feeds:
  - category: technology
    urls:
      - https://techcrunch.com/feed/
      - https://www.wired.com/feed/rss
  - category: science
    urls:
      - https://www.sciencedaily.com/rss/all.xml
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	groups, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("LoadFeeds() error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("LoadFeeds() returned %d groups, want 2", len(groups))
	}
	if groups[0].Category != "technology" || len(groups[0].URLs) != 2 {
		t.Errorf("first group = %+v", groups[0])
	}
	if groups[1].Category != "science" || len(groups[1].URLs) != 1 {
		t.Errorf("second group = %+v", groups[1])
	}
}

func TestLoadFeeds_MissingFile(t *testing.T) {
	if _, err := LoadFeeds(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFeeds() on missing file returned nil error")
	}
}

func TestLoadFeeds_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	if err := os.WriteFile(path, []byte("feeds: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFeeds(path); err == nil {
		t.Error("LoadFeeds() on malformed yaml returned nil error")
	}
}

package storage

import (
	"path/filepath"
	"testing"
)

func TestHash_StableAcrossFormatting(t *testing.T) {
	fc := NewFileCache("unused.json", 48)

	base := fc.Hash("Big Launch Announced", "https://example.com/a")
	same := []string{
		"big launch announced",
		"  Big   Launch  Announced  ",
		"BIG LAUNCH ANNOUNCED",
	}
	for _, title := range same {
		if got := fc.Hash(title, "https://example.com/a"); got != base {
			t.Errorf("Hash(%q) = %q, want %q", title, got, base)
		}
	}
}

func TestHash_IgnoresPathAndTrackingParams(t *testing.T) {
	fc := NewFileCache("unused.json", 48)

	a := fc.Hash("Big Launch", "https://example.com/story?utm_source=rss")
	b := fc.Hash("Big Launch", "https://www.example.com/other-path")
	if a != b {
		t.Errorf("same title and domain hashed differently: %q vs %q", a, b)
	}

	other := fc.Hash("Big Launch", "https://elsewhere.com/story")
	if a == other {
		t.Error("different domains collided")
	}
}

func TestHash_Length(t *testing.T) {
	fc := NewFileCache("unused.json", 48)
	if got := fc.Hash("title", "https://example.com"); len(got) != 16 {
		t.Errorf("Hash length = %d, want 16", len(got))
	}
}

func TestSeenAndMark(t *testing.T) {
	fc := NewFileCache("unused.json", 48)
	hash := fc.Hash("Big Launch", "https://example.com/a")

	if fc.Seen(hash) {
		t.Error("fresh cache reports item as seen")
	}
	fc.Mark(hash, "Big Launch", "https://example.com/a", "Example", "technology")
	if !fc.Seen(hash) {
		t.Error("marked item not reported as seen")
	}
	if fc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", fc.Len())
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	fc := NewFileCache(path, 48)
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}
	hash := fc.Hash("Persisted Story", "https://example.com/p")
	fc.Mark(hash, "Persisted Story", "https://example.com/p", "Example", "general")
	if err := fc.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewFileCache(path, 48)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if !reloaded.Seen(hash) {
		t.Error("entry lost across save/load")
	}
}

func TestLoad_DropsExpiredEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	fc := NewFileCache(path, 48)
	hash := fc.Hash("Old Story", "https://example.com/o")
	fc.Mark(hash, "Old Story", "https://example.com/o", "Example", "general")
	if err := fc.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Zero TTL means everything written in the past is expired.
	expired := NewFileCache(path, 0)
	if err := expired.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if expired.Len() != 0 {
		t.Errorf("expired cache kept %d entries, want 0", expired.Len())
	}
}

func TestCleanup(t *testing.T) {
	fc := NewFileCache("unused.json", 0)
	hash := fc.Hash("Fleeting Story", "https://example.com/f")
	fc.Mark(hash, "Fleeting Story", "https://example.com/f", "Example", "general")

	fc.Cleanup()
	if fc.Len() != 0 {
		t.Errorf("Cleanup kept %d entries with zero TTL, want 0", fc.Len())
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.example.com/path", "example.com"},
		{"http://Example.com", "example.com"},
		{"https://sub.example.com/a/b", "sub.example.com"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := extractDomain(tt.url); got != tt.want {
			t.Errorf("extractDomain(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

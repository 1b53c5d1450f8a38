// Package storage persists the set of already-digested entries between runs
// so repeated feed items are filtered out at ingestion.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// SeenItem records one entry that already went into a digest.
type SeenItem struct {
	Hash     string    `json:"hash"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Source   string    `json:"source"`
	SeenAt   time.Time `json:"seen_at"`
	Category string    `json:"category,omitempty"`
}

// FileCache manages seen entries in a JSON file with a TTL.
type FileCache struct {
	filePath string
	ttl      time.Duration
	mu       sync.RWMutex
	items    map[string]SeenItem
}

// NewFileCache creates a cache backed by filePath; entries older than
// ttlHours are dropped on load and cleanup.
func NewFileCache(filePath string, ttlHours int) *FileCache {
	return &FileCache{
		filePath: filePath,
		ttl:      time.Duration(ttlHours) * time.Hour,
		items:    make(map[string]SeenItem),
	}
}

// Load reads the cache file, skipping expired entries. A missing file just
// starts the cache empty.
func (fc *FileCache) Load() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	data, err := os.ReadFile(fc.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read seen cache: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items []SeenItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("unmarshal seen cache: %w", err)
	}

	cutoff := time.Now().Add(-fc.ttl)
	for _, item := range items {
		if item.SeenAt.After(cutoff) {
			fc.items[item.Hash] = item
		}
	}
	return nil
}

// Save writes the current cache to disk.
func (fc *FileCache) Save() error {
	fc.mu.RLock()
	items := make([]SeenItem, 0, len(fc.items))
	for _, item := range fc.items {
		items = append(items, item)
	}
	fc.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seen cache: %w", err)
	}
	if err := os.WriteFile(fc.filePath, data, 0o644); err != nil {
		return fmt.Errorf("write seen cache: %w", err)
	}
	return nil
}

// Hash builds a stable key from the normalized title plus the link's host,
// so the same story syndicated with tracking-parameter URLs still matches.
func (fc *FileCache) Hash(title, link string) string {
	normalized := strings.ToLower(strings.TrimSpace(title))
	normalized = strings.Join(strings.Fields(normalized), " ")

	h := sha256.New()
	h.Write([]byte(normalized + "|" + extractDomain(link)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Seen reports whether the hash is present and still within the TTL.
func (fc *FileCache) Seen(hash string) bool {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	item, ok := fc.items[hash]
	if !ok {
		return false
	}
	return item.SeenAt.After(time.Now().Add(-fc.ttl))
}

// Mark records an entry as digested.
func (fc *FileCache) Mark(hash, title, link, source, category string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.items[hash] = SeenItem{
		Hash:     hash,
		Title:    title,
		Link:     link,
		Source:   source,
		Category: category,
		SeenAt:   time.Now(),
	}
}

// Cleanup removes expired entries from memory.
func (fc *FileCache) Cleanup() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	cutoff := time.Now().Add(-fc.ttl)
	for hash, item := range fc.items {
		if item.SeenAt.Before(cutoff) {
			delete(fc.items, hash)
		}
	}
}

// Len returns the number of cached entries.
func (fc *FileCache) Len() int {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return len(fc.items)
}

func extractDomain(url string) string {
	if url == "" {
		return "unknown"
	}
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")

	parts := strings.Split(url, "/")
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.ToLower(strings.TrimPrefix(parts[0], "www."))
}

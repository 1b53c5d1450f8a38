package reader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store manages profiles in a JSON file.
type Store struct {
	filePath string
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewStore creates a store backed by the given file path.
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
		profiles: make(map[string]*Profile),
	}
}

// Load reads profiles from disk. A missing file is not an error: the store
// starts empty and seeds the default personas so a fresh install produces
// digests immediately.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		slog.Info("no profiles file found, seeding default personas", "path", s.filePath)
		s.seedDefaultPersonas()
		return s.saveLocked()
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("read profiles file: %w", err)
	}
	if len(data) == 0 {
		s.seedDefaultPersonas()
		return s.saveLocked()
	}

	var profiles []*Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("unmarshal profiles: %w", err)
	}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	slog.Info("loaded reader profiles", "count", len(s.profiles))
	return nil
}

// Save writes all profiles to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	profiles := make([]*Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profiles dir: %w", err)
		}
	}
	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("write profiles file: %w", err)
	}
	return nil
}

// Get returns the profile with the given id, or nil.
func (s *Store) Get(id string) *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[id]
}

// All returns every profile, sorted by name for stable iteration.
func (s *Store) All() []*Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Create adds a new profile with a generated id and persists the store.
func (s *Store) Create(p Profile) (*Profile, error) {
	s.mu.Lock()
	p.ID = uuid.NewString()
	if p.Frequency == "" {
		p.Frequency = "daily"
	}
	if p.Language == "" {
		p.Language = "en"
	}
	if p.MaxArticles <= 0 {
		p.MaxArticles = DefaultMaxArticles
	}
	s.profiles[p.ID] = &p
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	slog.Info("created reader profile", "name", p.Name, "id", p.ID)
	return &p, nil
}

// Delete removes a profile and persists the store. Returns false when the
// id is unknown.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return false, nil
	}
	delete(s.profiles, id)
	return true, s.saveLocked()
}

func (s *Store) seedDefaultPersonas() {
	personas := []Profile{
		{
			Name:                "Alex Parker",
			Email:               "alex.parker@example.com",
			Interests:           []string{"AI", "cybersecurity", "blockchain", "startups", "programming"},
			PreferredSources:    []string{"TechCrunch", "Wired", "Ars Technica", "MIT Technology Review"},
			PreferredCategories: []string{"technology"},
			Persona:             "tech_enthusiast",
		},
		{
			Name:                "Priya Sharma",
			Email:               "priya.sharma@example.com",
			Interests:           []string{"global markets", "startups", "fintech", "cryptocurrency", "economics"},
			PreferredSources:    []string{"Bloomberg", "Financial Times", "Forbes", "CoinDesk"},
			PreferredCategories: []string{"business"},
			Persona:             "finance_guru",
		},
		{
			Name:                "Marco Rossi",
			Email:               "marco.rossi@example.com",
			Interests:           []string{"football", "F1", "NBA", "Olympic sports", "esports"},
			PreferredSources:    []string{"ESPN", "BBC Sport", "Sky Sports", "The Athletic"},
			PreferredCategories: []string{"sports"},
			Persona:             "sports_journalist",
		},
		{
			Name:                "Lisa Thompson",
			Email:               "lisa.thompson@example.com",
			Interests:           []string{"movies", "celebrity news", "TV shows", "music", "books"},
			PreferredSources:    []string{"Variety", "Rolling Stone", "Billboard", "Hollywood Reporter"},
			PreferredCategories: []string{"entertainment"},
			Persona:             "entertainment_buff",
		},
		{
			Name:                "David Martinez",
			Email:               "david.martinez@example.com",
			Interests:           []string{"space exploration", "AI", "biotech", "physics", "renewable energy"},
			PreferredSources:    []string{"NASA", "Science Daily", "Nature", "Ars Technica"},
			PreferredCategories: []string{"science"},
			Persona:             "science_nerd",
		},
	}

	for _, p := range personas {
		p := p // per-iteration copy; required under Go <1.22 loop semantics
		p.ID = uuid.NewString()
		p.Frequency = "daily"
		p.Language = "en"
		p.MaxArticles = DefaultMaxArticles
		s.profiles[p.ID] = &p
	}
}

package reader

import (
	"path/filepath"
	"testing"
)

func TestDigestLimit(t *testing.T) {
	tests := []struct {
		max  int
		want int
	}{
		{0, DefaultMaxArticles},
		{-5, DefaultMaxArticles},
		{3, 3},
		{25, 25},
	}
	for _, tt := range tests {
		p := &Profile{MaxArticles: tt.max}
		if got := p.DigestLimit(); got != tt.want {
			t.Errorf("DigestLimit(max=%d) = %d, want %d", tt.max, got, tt.want)
		}
	}
}

func TestStore_LoadSeedsDefaultPersonas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	all := s.All()
	if len(all) != 5 {
		t.Fatalf("seeded %d profiles, want 5", len(all))
	}
	for _, p := range all {
		if p.ID == "" {
			t.Errorf("profile %q has no id", p.Name)
		}
		if p.Frequency != "daily" || p.Language != "en" || p.MaxArticles != DefaultMaxArticles {
			t.Errorf("profile %q missing seeded defaults: %+v", p.Name, p)
		}
	}
	// All() sorts by name.
	if all[0].Name != "Alex Parker" {
		t.Errorf("first profile = %q, want Alex Parker", all[0].Name)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	created, err := s.Create(Profile{
		Name:      "Test Reader",
		Email:     "test@example.com",
		Interests: []string{"AI"},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() did not assign an id")
	}

	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	got := reloaded.Get(created.ID)
	if got == nil {
		t.Fatal("created profile missing after reload")
	}
	if got.Name != "Test Reader" || got.Email != "test@example.com" {
		t.Errorf("reloaded profile = %+v", got)
	}
	if got.Frequency != "daily" || got.Language != "en" || got.MaxArticles != DefaultMaxArticles {
		t.Errorf("Create() defaults not persisted: %+v", got)
	}
}

func TestStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	created, err := s.Create(Profile{Name: "Temp Reader"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	ok, err := s.Delete(created.ID)
	if err != nil || !ok {
		t.Fatalf("Delete() = (%v, %v), want (true, nil)", ok, err)
	}
	if s.Get(created.ID) != nil {
		t.Error("deleted profile still retrievable")
	}

	ok, err = s.Delete("no-such-id")
	if err != nil || ok {
		t.Errorf("Delete(unknown) = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "users.json"))
	if got := s.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}
}

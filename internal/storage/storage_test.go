package storage

import (
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoad_DefaultOnMissingKey(t *testing.T) {
	b := NewMemStore()

	def := record{Name: "fallback", Count: 3}
	got := Load(b, "absent", def)
	if got != def {
		t.Errorf("Load on missing key = %+v, want default %+v", got, def)
	}
}

func TestLoad_DefaultOnCorruptValue(t *testing.T) {
	b := NewMemStore()
	if err := b.Put("bad", []byte("{not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	def := record{Name: "fallback"}
	got := Load(b, "bad", def)
	if got != def {
		t.Errorf("Load on corrupt value = %+v, want default %+v", got, def)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	b := NewMemStore()

	want := record{Name: "water", Count: 8}
	Save(b, "rec", want)

	got := Load(b, "rec", record{})
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestJSONStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifedash.json")

	s, err := OpenJSONStore(path)
	if err != nil {
		t.Fatalf("OpenJSONStore failed: %v", err)
	}
	Save(s, KeyTasks, []record{{Name: "a", Count: 1}})

	reopened, err := OpenJSONStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got := Load(reopened, KeyTasks, []record(nil))
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("reopened store returned %+v, want the saved record", got)
	}
}

func TestJSONStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lifedash.json")
	if _, err := OpenJSONStore(path); err != nil {
		t.Fatalf("OpenJSONStore failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent directory was not created: %v", err)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifedash.db")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	defer s.Close()

	Save(s, KeyHabits, record{Name: "read", Count: 12})

	got := Load(s, KeyHabits, record{})
	if got.Name != "read" || got.Count != 12 {
		t.Errorf("round trip = %+v", got)
	}

	// Overwrite must replace, not duplicate.
	Save(s, KeyHabits, record{Name: "read", Count: 13})
	if got := Load(s, KeyHabits, record{}); got.Count != 13 {
		t.Errorf("after overwrite Count = %d, want 13", got.Count)
	}
}

func TestOpen_FallsBackToMemory(t *testing.T) {
	// A directory path cannot be opened as a JSON file; Open must degrade
	// instead of failing.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "taken.json")
	if err := os.Mkdir(blocked, 0700); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	b := Open(blocked)
	if _, ok := b.(*MemStore); !ok {
		t.Errorf("Open on unusable path returned %T, want *MemStore", b)
	}

	// Degraded mode still works for the session.
	Save(b, "k", record{Name: "x"})
	if got := Load(b, "k", record{}); got.Name != "x" {
		t.Errorf("degraded store round trip = %+v", got)
	}
}

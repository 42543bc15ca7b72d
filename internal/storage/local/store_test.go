package local

import (
	"errors"
	"sync"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	saved := record{Name: "streak", Count: 7}
	if err := store.Save("progress", saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var loaded record
	if err := store.Load("progress", &loaded); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != saved {
		t.Errorf("Load() = %+v; want %+v", loaded, saved)
	}
}

func TestStore_LoadMissingKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	var out record
	if err := store.Load("absent", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(absent) error = %v; want ErrNotFound", err)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if err := store.Save("k", record{Name: "old"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save("k", record{Name: "new"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out record
	if err := store.Load("k", &out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out.Name != "new" {
		t.Errorf("Name = %q; want new", out.Name)
	}
}

func TestStore_DeleteIdempotent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if err := store.Save("k", record{Name: "v"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Exists("k") {
		t.Error("Exists() = true after delete")
	}
	if err := store.Delete("k"); err != nil {
		t.Errorf("Delete() of a missing key = %v; want nil", err)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			if err := store.Save("shared", record{Count: n}); err != nil {
				t.Errorf("Save() error = %v", err)
			}
		}(i)
		go func() {
			defer wg.Done()
			var out record
			if err := store.Load("shared", &out); err != nil && !errors.Is(err, ErrNotFound) {
				t.Errorf("Load() error = %v", err)
			}
		}()
	}
	wg.Wait()
}

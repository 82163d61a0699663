package repositories

import (
	"testing"

	"github.com/amwagner/askminstrel/internal/shared"
)

func setupTestRepo(t *testing.T) *LookupRepository {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewLookupRepository(db)
}

func TestLookupRepositoryGetPut(t *testing.T) {
	t.Run("miss on unknown key", func(t *testing.T) {
		repo := setupTestRepo(t)

		_, ok, err := repo.Get("search:artist:radiohead")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if ok {
			t.Error("Expected a miss on an empty cache")
		}
	})

	t.Run("stores and retrieves a payload", func(t *testing.T) {
		repo := setupTestRepo(t)

		if err := repo.Put("artist:a1", []byte(`{"name":"Radiohead"}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		payload, ok, err := repo.Get("artist:a1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("Expected a hit")
		}
		if string(payload) != `{"name":"Radiohead"}` {
			t.Errorf("Unexpected payload %q", payload)
		}
	})

	t.Run("put replaces an existing payload", func(t *testing.T) {
		repo := setupTestRepo(t)

		if err := repo.Put("track:t1", []byte("old")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := repo.Put("track:t1", []byte("new")); err != nil {
			t.Fatalf("Second put failed: %v", err)
		}

		payload, ok, err := repo.Get("track:t1")
		if err != nil || !ok {
			t.Fatalf("Get failed: ok=%v err=%v", ok, err)
		}
		if string(payload) != "new" {
			t.Errorf("Expected replaced payload, got %q", payload)
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 row after replace, got %d", count)
		}
	})
}

func TestLookupRepositoryDelete(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.Put("album:al1", []byte("x")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := repo.Delete("album:al1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, ok, err := repo.Get("album:al1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected a miss after delete")
	}

	t.Run("deleting a missing key is not an error", func(t *testing.T) {
		if err := repo.Delete("album:nope"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}

func TestLookupRepositoryPurge(t *testing.T) {
	repo := setupTestRepo(t)

	for _, key := range []string{"a", "b", "c"} {
		if err := repo.Put(key, []byte("x")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	dropped, err := repo.Purge()
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if dropped != 3 {
		t.Errorf("Expected 3 dropped rows, got %d", dropped)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty cache, got %d rows", count)
	}
}

func TestLookupRepositoryOldest(t *testing.T) {
	t.Run("zero time when empty", func(t *testing.T) {
		repo := setupTestRepo(t)

		oldest, err := repo.Oldest()
		if err != nil {
			t.Fatalf("Oldest failed: %v", err)
		}
		if !oldest.IsZero() {
			t.Errorf("Expected zero time, got %v", oldest)
		}
	})

	t.Run("returns a timestamp once populated", func(t *testing.T) {
		repo := setupTestRepo(t)

		if err := repo.Put("a", []byte("x")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		oldest, err := repo.Oldest()
		if err != nil {
			t.Fatalf("Oldest failed: %v", err)
		}
		if oldest.IsZero() {
			t.Error("Expected a non-zero timestamp")
		}
	})
}

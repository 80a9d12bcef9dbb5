package sessionstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yu-shop/storefront-api/internal/core/domain"
)

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil state, got %+v", state)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	saved := domain.LoggedInAs(&domain.Member{MemberID: 12345, Name: "測試用戶"}, domain.UserTypeMember)
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil || !loaded.IsLoggedIn {
		t.Fatalf("unexpected state: %+v", loaded)
	}
	if loaded.User.MemberID != 12345 || *loaded.UserType != domain.UserTypeMember {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Fatalf("expected error for corrupt state")
	}
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	if err := store.Clear(); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}

	if err := store.Save(domain.LoggedOut()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("state file should be gone")
	}
}

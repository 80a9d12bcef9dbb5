package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/infrastructure/sessionstore"
	"github.com/yu-shop/storefront-api/internal/pkg/config"
)

func TestNewSessionStore_FileBackendUsesConfiguredPath(t *testing.T) {
	statePath = ""
	cfg := &config.Config{
		Session: config.SessionConfig{
			Backend:  "file",
			FilePath: filepath.Join(t.TempDir(), "ctl_state.json"),
		},
	}

	store, err := newSessionStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*sessionstore.FileStore); !ok {
		t.Fatalf("expected file store, got %T", store)
	}

	saved := domain.LoggedInAs(&domain.Member{MemberID: 12345}, domain.UserTypeMember)
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil || loaded == nil || loaded.User.MemberID != 12345 {
		t.Fatalf("configured path round trip failed: %+v (%v)", loaded, err)
	}
}

func TestNewSessionStore_StateFlagOverridesConfig(t *testing.T) {
	override := filepath.Join(t.TempDir(), "override.json")
	statePath = override
	defer func() { statePath = "" }()

	cfg := &config.Config{
		Session: config.SessionConfig{Backend: "file", FilePath: "ignored.json"},
	}

	store, err := newSessionStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(domain.LoggedOut()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if loaded, err := sessionstore.NewFileStore(override).Load(); err != nil || loaded == nil {
		t.Fatalf("state was not written to the override path: %v", err)
	}
}

func TestDescribeSession_LoggedIn(t *testing.T) {
	state := domain.LoggedInAs(&domain.Member{Name: "測試用戶"}, domain.UserTypeMember)
	if got := describeSession(state); got != "測試用戶 (member)" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestDescribeSession_InconsistentStateDoesNotPanic(t *testing.T) {
	// isLoggedIn true but user/userType missing, as a hand-edited state file
	// can produce.
	state := domain.AuthState{IsLoggedIn: true, User: nil, UserType: nil}
	if got := describeSession(state); got != "not logged in" {
		t.Fatalf("unexpected line: %q", got)
	}

	userType := domain.UserTypeAdmin
	state = domain.AuthState{IsLoggedIn: true, User: nil, UserType: &userType}
	if got := describeSession(state); got != "not logged in" {
		t.Fatalf("unexpected line: %q", got)
	}
}

package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskflow/internal/config"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func TestStore_SaveAndRead(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)

	user := service.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}
	if err := store.Save("tok-123", user); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !store.IsLoggedIn() {
		t.Error("expected IsLoggedIn true after Save")
	}
	if got := store.Token(); got != "tok-123" {
		t.Errorf("expected token %q, got %q", "tok-123", got)
	}

	current := store.CurrentUser()
	if current == nil {
		t.Fatal("expected CurrentUser, got nil")
	}
	if current.Email != user.Email || current.Name != user.Name || current.ID != user.ID {
		t.Errorf("unexpected user: %+v", current)
	}
}

func TestStore_LoggedOutByDefault(t *testing.T) {
	store := session.NewStore(t.TempDir())

	if store.IsLoggedIn() {
		t.Error("expected IsLoggedIn false for empty dir")
	}
	if store.Token() != "" {
		t.Error("expected empty token")
	}
	if store.CurrentUser() != nil {
		t.Error("expected nil CurrentUser")
	}
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)

	if err := store.Save("tok", service.User{Email: "a@b.c"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.IsLoggedIn() {
		t.Error("expected logged out after Clear")
	}
	if store.CurrentUser() != nil {
		t.Error("expected nil CurrentUser after Clear")
	}

	// Clearing an already-cleared store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestStore_CurrentUser_UndefinedLiteral(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, config.UserFile), []byte("undefined"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if store.CurrentUser() != nil {
		t.Error("expected nil for literal undefined payload")
	}
}

func TestStore_CurrentUser_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, config.UserFile), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if store.CurrentUser() != nil {
		t.Error("expected nil for malformed payload")
	}
}

func TestStore_InertWithoutDir(t *testing.T) {
	store := session.NewStore("")

	if err := store.Save("tok", service.User{Email: "a@b.c"}); err != nil {
		t.Errorf("Save on inert store should be a no-op, got %v", err)
	}
	if store.IsLoggedIn() {
		t.Error("inert store must report logged out")
	}
	if store.CurrentUser() != nil {
		t.Error("inert store must report no user")
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on inert store should be a no-op, got %v", err)
	}
}

func TestStore_TokenTrimmed(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, config.TokenFile), []byte("tok-x\n"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := store.Token(); got != "tok-x" {
		t.Errorf("expected trimmed token %q, got %q", "tok-x", got)
	}
}

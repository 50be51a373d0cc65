// Package session persists the authenticated session (bearer token and user
// profile) in the config directory.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/service"
)

// Store reads and writes the session files under a config directory.
// A Store with an empty directory is inert: writes are no-ops and reads
// report a logged-out session. That keeps callers safe when no durable
// location is available (e.g. stateless CI environments).
type Store struct {
	dir string
}

// NewStore creates a session store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// ForConfig creates a session store for the config's directory.
func ForConfig(cfg *config.Config) *Store {
	return NewStore(cfg.Dir)
}

// Save persists the token and user profile. Token file mode is 0600.
func (s *Store) Save(token string, user service.User) error {
	if s.dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenPath(), []byte(token), 0600); err != nil {
		return err
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.userPath(), data, 0600)
}

// Clear removes the persisted token and user. Missing files are not an error.
func (s *Store) Clear() error {
	if s.dir == "" {
		return nil
	}
	if err := os.Remove(s.tokenPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.Remove(s.userPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// IsLoggedIn reports whether a non-empty token is persisted.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *Store) Token() string {
	if s.dir == "" {
		return ""
	}
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// CurrentUser returns the persisted user profile, or nil when absent.
// A literal "undefined" payload or malformed JSON also yields nil; a stale
// or corrupt profile never breaks the caller.
func (s *Store) CurrentUser() *service.User {
	if s.dir == "" {
		return nil
	}
	data, err := os.ReadFile(s.userPath())
	if err != nil {
		return nil
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "undefined" {
		return nil
	}
	var user service.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.dir, config.TokenFile)
}

func (s *Store) userPath() string {
	return filepath.Join(s.dir, config.UserFile)
}

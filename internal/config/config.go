// Package config handles the XDG configuration directory and API endpoint
// selection.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the application directory name.
	AppName = "taskflow"

	// TokenFile stores the raw bearer token.
	TokenFile = "token"

	// UserFile stores the serialized user profile.
	UserFile = "user.json"

	// DefaultAPIURL is the production API endpoint.
	DefaultAPIURL = "https://task-manager-backend-1-a4gw.onrender.com/api"

	// DevAPIURL is the conventional local development endpoint.
	DevAPIURL = "http://localhost:3000/api"

	// APIURLEnv overrides the API endpoint, typically pointing at DevAPIURL.
	APIURLEnv = "TASKFLOW_API_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the API base URL, without a trailing slash.
	APIURL string

	// Debug enables debug logging to stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskflow or $HOME/.config/taskflow.
// If apiURL is empty, uses TASKFLOW_API_URL or the production endpoint.
func New(configDir, apiURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	url := apiURL
	if url == "" {
		url = os.Getenv(APIURLEnv)
	}
	if url == "" {
		url = DefaultAPIURL
	}
	return &Config{Dir: dir, APIURL: strings.TrimRight(url, "/")}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// UserPath returns the path to the stored user profile file.
func (c *Config) UserPath() string {
	return filepath.Join(c.Dir, UserFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Package config gathers the settings the commands share: backend location
// and credentials from the environment, and an optional per-user YAML file
// for the watchlist and display preferences.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBackendURL is used when FOLIOVIEW_BACKEND_URL is unset.
	DefaultBackendURL = "http://localhost:5000"
	defaultFileName   = "folioview.yaml"
	defaultTokenName  = "folioview-token.json"
)

// Settings is the per-user configuration file.
type Settings struct {
	// DefaultPortfolio is used when a command takes no -portfolio flag.
	DefaultPortfolio string `yaml:"default_portfolio,omitempty"`
	// Currency is the display currency code, EUR when empty.
	Currency string `yaml:"currency,omitempty"`
	// Watchlist seeds the chart's ticker selection.
	Watchlist []WatchEntry `yaml:"watchlist,omitempty"`
	// Benchmarks seeds the chart's benchmark selection.
	Benchmarks []string `yaml:"benchmarks,omitempty"`
}

// WatchEntry names a tracked instrument.
type WatchEntry struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name,omitempty"`
}

// Symbols returns the watchlist as plain ticker symbols.
func (s *Settings) Symbols() []string {
	out := make([]string, 0, len(s.Watchlist))
	for _, e := range s.Watchlist {
		out = append(out, e.Symbol)
	}
	return out
}

// BackendURL reads FOLIOVIEW_BACKEND_URL, falling back to the default.
func BackendURL() string {
	if v := strings.TrimSpace(os.Getenv("FOLIOVIEW_BACKEND_URL")); v != "" {
		return v
	}
	return DefaultBackendURL
}

// TokenFile reads FOLIOVIEW_TOKEN_FILE, falling back to a file next to the
// settings file.
func TokenFile() string {
	if v := strings.TrimSpace(os.Getenv("FOLIOVIEW_TOKEN_FILE")); v != "" {
		return v
	}
	return filepath.Join(configDir(), defaultTokenName)
}

// GeminiAPIKey reads GEMINI_API_KEY. Empty means report commands are
// unavailable locally; the backend still generates reports server side.
func GeminiAPIKey() string {
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "folioview")
	}
	return "."
}

// Path returns the settings file location, honoring FOLIOVIEW_CONFIG.
func Path() string {
	if v := strings.TrimSpace(os.Getenv("FOLIOVIEW_CONFIG")); v != "" {
		return v
	}
	return filepath.Join(configDir(), defaultFileName)
}

// Load reads the settings file. A missing file is not an error, it yields
// empty settings.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	return &s, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DefaultPortfolio != "" || len(s.Watchlist) != 0 {
		t.Errorf("missing file should yield empty settings, got %+v", s)
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folioview.yaml")
	doc := `default_portfolio: main
currency: USD
watchlist:
  - symbol: AAPL
    name: Apple
  - symbol: MC.PA
benchmarks: [SPY, URTH]
`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DefaultPortfolio != "main" {
		t.Errorf("DefaultPortfolio = %q want main", s.DefaultPortfolio)
	}
	if s.Currency != "USD" {
		t.Errorf("Currency = %q want USD", s.Currency)
	}
	if got := s.Symbols(); len(got) != 2 || got[0] != "AAPL" || got[1] != "MC.PA" {
		t.Errorf("Symbols() = %v want [AAPL MC.PA]", got)
	}
	if len(s.Benchmarks) != 2 || s.Benchmarks[0] != "SPY" {
		t.Errorf("Benchmarks = %v want [SPY URTH]", s.Benchmarks)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folioview.yaml")
	if err := os.WriteFile(path, []byte("watchlist: {not a list"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestBackendURLDefault(t *testing.T) {
	t.Setenv("FOLIOVIEW_BACKEND_URL", "")
	if got := BackendURL(); got != DefaultBackendURL {
		t.Errorf("BackendURL() = %q want %q", got, DefaultBackendURL)
	}
	t.Setenv("FOLIOVIEW_BACKEND_URL", "https://folio.example.com")
	if got := BackendURL(); got != "https://folio.example.com" {
		t.Errorf("BackendURL() = %q want the override", got)
	}
}

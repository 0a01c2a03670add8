package cmd

import (
	"strings"
	"testing"

	"folioview"
	"folioview/config"
)

func TestPortfolioResolution(t *testing.T) {
	settings := &config.Settings{DefaultPortfolio: "main"}

	if got, err := Portfolio("other", settings); err != nil || got != "other" {
		t.Errorf("flag should win: got %q, %v", got, err)
	}
	if got, err := Portfolio("", settings); err != nil || got != "main" {
		t.Errorf("settings default should apply: got %q, %v", got, err)
	}
	if _, err := Portfolio("", &config.Settings{}); err == nil {
		t.Error("no flag and no default should be an error")
	}
}

func TestCurrencyResolution(t *testing.T) {
	if got := Currency(&config.Settings{Currency: "USD"}); got != "USD" {
		t.Errorf("Currency = %q want USD", got)
	}
	if got := Currency(&config.Settings{}); got != "EUR" {
		t.Errorf("Currency fallback = %q want EUR", got)
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\") = %v want nil", got)
	}
	got := splitList(" AAPL, MSFT ,,SPY")
	want := []string{"AAPL", "MSFT", "SPY"}
	if len(got) != len(want) {
		t.Fatalf("splitList = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList[%d] = %q want %q", i, got[i], want[i])
		}
	}
}

func TestChartRequestedRange(t *testing.T) {
	c := &chartCmd{from: "2024-01-01", to: "2024-06-30"}
	r, err := c.requestedRange()
	if err != nil {
		t.Fatal(err)
	}
	if !r.Contains(folioview.MustParseDate("2024-03-15")) {
		t.Error("range should contain an inner date")
	}
	if r.Contains(folioview.MustParseDate("2024-07-01")) {
		t.Error("range should exclude dates past -to")
	}

	c = &chartCmd{from: "not-a-date"}
	if _, err := c.requestedRange(); err == nil || !strings.Contains(err.Error(), "-from") {
		t.Errorf("bad -from should name the flag, got %v", err)
	}

	c = &chartCmd{}
	r, err = c.requestedRange()
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsZero() {
		t.Error("no bounds should yield the full-span zero range")
	}
}

package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folioview"
	"folioview/api"
)

func newTestLoader(t *testing.T, handler http.HandlerFunc) *Loader {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := api.New(server.URL, nil)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	return NewLoader(client.WithHTTPClient(server.Client()))
}

func TestLoadMergesAllSeries(t *testing.T) {
	l := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/main/performance"):
			w.Write([]byte(`[{"date":"2024-01-01","value":900,"abs_value":1000},{"date":"2024-02-01","value":950,"abs_value":1100}]`))
		case strings.Contains(r.URL.Path, "/ticker/AAPL/"):
			w.Write([]byte(`[{"date":"2024-01-15","abs_value":50}]`))
		case strings.Contains(r.URL.Path, "/benchmark/SPY/"):
			w.Write([]byte(`[{"date":"2024-01-01","abs_value":470}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	frame, errs, err := l.Load(context.Background(), Selection{
		Portfolio:  "main",
		Tickers:    []string{"AAPL"},
		Benchmarks: []string{"SPY"},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("errs = %v want none", errs)
	}
	wantNames := []string{"main", "AAPL", "SPY"}
	if got := frame.Names(); len(got) != 3 || got[0] != wantNames[0] || got[1] != wantNames[1] || got[2] != wantNames[2] {
		t.Errorf("Names() = %v want %v", got, wantNames)
	}
	if frame.Len() != 3 {
		t.Errorf("axis length = %d want 3 (union of 01-01, 01-15, 02-01)", frame.Len())
	}
	if got := frame.Sample("main", 1); got.Abs.Valid {
		t.Errorf("portfolio@01-15 = %v want gap", got.Abs.Float)
	}
}

func TestLoadIsolatesFailedSeries(t *testing.T) {
	l := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/benchmark/") {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "upstream down"}`))
			return
		}
		w.Write([]byte(`[{"date":"2024-01-01","abs_value":1000}]`))
	})

	frame, errs, err := l.Load(context.Background(), Selection{
		Portfolio:  "main",
		Benchmarks: []string{"SPY"},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if errs["SPY"] == nil {
		t.Fatal("expected a fetch error for SPY")
	}
	var apiErr *api.Error
	if !errors.As(errs["SPY"], &apiErr) {
		t.Errorf("SPY err = %v want *api.Error", errs["SPY"])
	}
	// the failed series renders as absent in the merge, the rest survives
	if frame.Len() != 1 {
		t.Errorf("axis length = %d want 1", frame.Len())
	}
	if got := frame.Sample("main", 0); !got.Abs.Valid || got.Abs.Float != 1000 {
		t.Errorf("main@0 = %+v want 1000", got)
	}
	if present := frame.Present("SPY"); present != 0 {
		t.Errorf("SPY present points = %d want 0", present)
	}
}

func TestLoadDiscardsSupersededResults(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	l := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/old/") {
			close(started)
			<-release // the old selection's fetch is still in flight
		}
		w.Write([]byte(`[{"date":"2024-01-01","abs_value":1}]`))
	})

	type result struct {
		frame *folioview.Frame
		err   error
	}
	oldDone := make(chan result, 1)
	go func() {
		frame, _, err := l.Load(context.Background(), Selection{Portfolio: "old"})
		oldDone <- result{frame, err}
	}()

	// a newer selection takes over while the old fetch hangs
	<-started
	frame, _, err := l.Load(context.Background(), Selection{Portfolio: "new"})
	if err != nil {
		t.Fatalf("newer Load: %v", err)
	}
	if frame.Len() != 1 {
		t.Errorf("newer frame length = %d want 1", frame.Len())
	}

	close(release)
	old := <-oldDone
	if !errors.Is(old.err, ErrSuperseded) {
		t.Errorf("stale Load err = %v want ErrSuperseded", old.err)
	}
	if old.frame != nil {
		t.Errorf("stale Load frame = %v want nil (result discarded)", old.frame)
	}
}

// Package fetch loads every series of a chart selection from the backend in
// parallel and reconciles them into one frame.
//
// Each series lands in its own keyed slot, so concurrent fetches never race
// on shared memory, and every load is tagged with the generation of the
// selection that triggered it: when the selection changes while a load is in
// flight, the stale load's results are discarded instead of overwriting the
// fresher ones. A failed series isolates to its slot; the merge proceeds with
// whatever resolved.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"folioview"
	"folioview/api"
)

// ErrSuperseded reports that a newer selection was loaded while this one was
// in flight; its results were discarded.
var ErrSuperseded = errors.New("selection superseded by a newer load")

// Selection identifies what a chart is showing.
type Selection struct {
	Portfolio  string
	Tickers    []string
	Benchmarks []string
}

// keys returns the series keys of the selection, in display order:
// portfolio first, then tickers, then benchmarks.
func (s Selection) keys() []string {
	keys := make([]string, 0, 1+len(s.Tickers)+len(s.Benchmarks))
	if s.Portfolio != "" {
		keys = append(keys, s.Portfolio)
	}
	keys = append(keys, s.Tickers...)
	keys = append(keys, s.Benchmarks...)
	return keys
}

// Loader fetches selections for one chart. The zero value is not usable;
// create one with NewLoader.
type Loader struct {
	client *api.Client
	log    *slog.Logger

	mu  sync.Mutex
	gen int
}

func NewLoader(client *api.Client) *Loader {
	return &Loader{client: client, log: slog.Default().With("component", "fetch")}
}

// begin starts a new generation, superseding any load still in flight.
func (l *Loader) begin() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

func (l *Loader) current(gen int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.gen
}

// Load fetches all series of the selection in parallel, waits for every
// fetch of this selection to settle, and merges the results.
//
// The returned map carries the per-series fetch errors: a failed series is
// simply absent from the frame, it never aborts the whole chart. When a
// newer Load supersedes this one, Load returns ErrSuperseded and the partial
// results are dropped.
func (l *Loader) Load(ctx context.Context, sel Selection) (*folioview.Frame, map[string]error, error) {
	gen := l.begin()

	type task struct {
		key   string
		fetch func(context.Context) ([]api.PerformancePoint, error)
	}
	var tasks []task
	if sel.Portfolio != "" {
		portfolio := sel.Portfolio
		tasks = append(tasks, task{portfolio, func(ctx context.Context) ([]api.PerformancePoint, error) {
			return l.client.Performance(ctx, portfolio)
		}})
	}
	for _, ticker := range sel.Tickers {
		ticker := ticker
		tasks = append(tasks, task{ticker, func(ctx context.Context) ([]api.PerformancePoint, error) {
			return l.client.TickerPerformance(ctx, sel.Portfolio, ticker)
		}})
	}
	for _, bench := range sel.Benchmarks {
		bench := bench
		tasks = append(tasks, task{bench, func(ctx context.Context) ([]api.PerformancePoint, error) {
			return l.client.BenchmarkPerformance(ctx, bench)
		}})
	}

	var mu sync.Mutex
	slots := make(map[string]*folioview.Series, len(tasks))
	errs := make(map[string]error)

	var g errgroup.Group
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			points, err := t.fetch(ctx)
			mu.Lock()
			defer mu.Unlock()
			if !l.current(gen) {
				// a newer selection took over while this fetch was in
				// flight: its result must not be applied
				l.log.Debug("discarding stale result", "series", t.key, "generation", gen)
				return nil
			}
			if err != nil {
				errs[t.key] = err
				return nil
			}
			slots[t.key] = api.Series(t.key, points)
			return nil
		})
	}
	g.Wait()

	if !l.current(gen) {
		return nil, nil, ErrSuperseded
	}
	ordered := make([]*folioview.Series, 0, len(tasks))
	for _, key := range sel.keys() {
		ordered = append(ordered, slots[key]) // nil for failed series
	}
	return folioview.Merge(ordered...), errs, nil
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"folioview"
	"folioview/fetch"
	"folioview/renderer"
)

type chartCmd struct {
	portfolio  string
	tickers    string
	benchmarks string
	value      string
	from       string
	to         string
	ytd        bool
	watchlist  bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "chart portfolio, ticker and benchmark performance" }
func (*chartCmd) Usage() string {
	return `chart [-portfolio <name>] [-tickers a,b] [-benchmarks c,d] [-value <type>] [-from <date>] [-to <date>] [-ytd] [-watchlist]

  Merge the portfolio, tickers and benchmarks onto one date axis and
  print the result. Value types: net, absolute, daily, start. Days a
  series has no data for show as "-".
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.StringVar(&c.tickers, "tickers", "", "comma separated tickers to overlay")
	f.StringVar(&c.benchmarks, "benchmarks", "", "comma separated benchmark tickers to overlay")
	f.StringVar(&c.value, "value", "absolute", "value type: net, absolute, daily or start")
	f.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD)")
	f.BoolVar(&c.ytd, "ytd", false, "chart from January 1st of the current year")
	f.BoolVar(&c.watchlist, "watchlist", false, "overlay the settings watchlist and benchmarks")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := Settings()
	if err != nil {
		return fail(err)
	}
	portfolio, err := Portfolio(c.portfolio, settings)
	if err != nil {
		return fail(err)
	}
	vt, err := folioview.ParseValueType(c.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	r, err := c.requestedRange()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	client, err := NewClient()
	if err != nil {
		return fail(err)
	}

	sel := fetch.Selection{
		Portfolio:  portfolio,
		Tickers:    splitList(c.tickers),
		Benchmarks: splitList(c.benchmarks),
	}
	if c.watchlist {
		sel.Tickers = append(sel.Tickers, settings.Symbols()...)
		sel.Benchmarks = append(sel.Benchmarks, settings.Benchmarks...)
	}

	frame, errs, err := fetch.NewLoader(client).Load(ctx, sel)
	if err != nil {
		return fail(err)
	}
	for key, err := range errs {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", key, err)
	}

	if c.ytd {
		if span, ok := frame.Span(); ok {
			r = folioview.YearToDate(span.To)
		}
	}
	frame = frame.Filter(r)

	printMarkdown(renderer.ChartMarkdown(frame, vt, Currency(settings)))
	return subcommands.ExitSuccess
}

func (c *chartCmd) requestedRange() (folioview.Range, error) {
	var from, to folioview.Date
	var err error
	if c.from != "" {
		if from, err = folioview.ParseDate(c.from); err != nil {
			return folioview.Range{}, fmt.Errorf("-from: %w", err)
		}
	}
	if c.to != "" {
		if to, err = folioview.ParseDate(c.to); err != nil {
			return folioview.Range{}, fmt.Errorf("-to: %w", err)
		}
	}
	return folioview.NewRange(from, to), nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

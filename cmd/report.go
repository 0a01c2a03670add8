package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"folioview/api"
)

type reportCmd struct {
	portfolio string
	ticker    string
	tickers   string
	force     bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "fetch an AI-generated narrative report" }
func (*reportCmd) Usage() string {
	return `report [-portfolio <name>] [-ticker <symbol>] [-tickers <a,b,...>] [-force]

  Fetch the narrative report the backend generates about the portfolio,
  about a single ticker, or about several tickers compared side by side
  (-tickers needs at least two symbols). Reports are cached server side;
  -force regenerates one, which costs money.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.StringVar(&c.ticker, "ticker", "", "report on a single ticker instead of the portfolio")
	f.StringVar(&c.tickers, "tickers", "", "comma-separated symbols for one comparative report")
	f.BoolVar(&c.force, "force", false, "regenerate instead of serving the cached report")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := Settings()
	if err != nil {
		return fail(err)
	}
	portfolio, err := Portfolio(c.portfolio, settings)
	if err != nil {
		return fail(err)
	}
	client, err := NewClient()
	if err != nil {
		return fail(err)
	}

	var report *api.Report
	switch {
	case c.tickers != "":
		symbols := splitList(c.tickers)
		if len(symbols) < 2 {
			return fail(fmt.Errorf("-tickers needs at least two symbols, got %q", c.tickers))
		}
		report, err = client.TickersReport(ctx, portfolio, symbols)
	case c.ticker != "":
		report, err = client.TickerReport(ctx, portfolio, c.ticker, c.force)
	default:
		report, err = client.Report(ctx, portfolio, c.force)
	}
	if err != nil {
		return fail(err)
	}

	printMarkdown(report.Markdown)
	if report.Cost > 0 {
		fmt.Printf("\nGeneration cost: $%.4f\n", report.Cost)
	}
	return subcommands.ExitSuccess
}

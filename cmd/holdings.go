package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"folioview"
	"folioview/renderer"
)

type holdingsCmd struct {
	portfolio string
	live      bool
	sortKey   string
	desc      bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show the holdings of a portfolio" }
func (*holdingsCmd) Usage() string {
	return `holdings [-portfolio <name>] [-live] [-sort <key>] [-desc]

  Show the holdings of a portfolio. -live asks the backend for fresh
  prices instead of its cached snapshot. Sort keys: ticker, quantity,
  price, value.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.BoolVar(&c.live, "live", false, "fetch fresh prices")
	f.StringVar(&c.sortKey, "sort", "", "sort key: ticker, quantity, price or value")
	f.BoolVar(&c.desc, "desc", false, "sort descending")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fetch := client.Status
	if c.live {
		fetch = client.LiveStatus
	}
	status, err := fetch(ctx, portfolio)
	if err != nil {
		return fail(err)
	}

	sort := folioview.SortState{Key: c.sortKey}
	if c.desc {
		sort.Dir = folioview.Descending
	}
	printMarkdown(renderer.HoldingsMarkdown(status, sort, Currency(settings)))
	return subcommands.ExitSuccess
}

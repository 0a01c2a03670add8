package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"folioview"
	"folioview/renderer"
)

type transactionsCmd struct {
	portfolio string
	sortKey   string
	desc      bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the transactions of a portfolio" }
func (*transactionsCmd) Usage() string {
	return `transactions [-portfolio <name>] [-sort <key>] [-desc]

  List the transactions of a portfolio, newest first by default.
  Sort keys: date, ticker, label, quantity, price, name.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.StringVar(&c.sortKey, "sort", "", "sort key: date, ticker, label, quantity, price or name")
	f.BoolVar(&c.desc, "desc", false, "sort descending")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	txs, err := client.Transactions(ctx, portfolio)
	if err != nil {
		return fail(err)
	}

	sort := folioview.SortState{Key: c.sortKey}
	if c.desc {
		sort.Dir = folioview.Descending
	}
	printMarkdown(renderer.TransactionsMarkdown(txs, sort, Currency(settings)))
	return subcommands.ExitSuccess
}

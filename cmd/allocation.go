package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"folioview/renderer"
)

type allocationCmd struct {
	portfolio string
	grouping  string
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "show the asset allocation" }
func (*allocationCmd) Usage() string {
	return `allocation [-portfolio <name>] [-grouping <dimension>]

  Show how the portfolio value splits across a grouping dimension,
  largest slice first.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.StringVar(&c.grouping, "grouping", "ticker", "grouping dimension, e.g. ticker or sector")
}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	slices, err := client.Allocation(ctx, portfolio, c.grouping)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AllocationMarkdown(slices, c.grouping, Currency(settings)))
	return subcommands.ExitSuccess
}

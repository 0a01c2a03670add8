package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"folioview/renderer"
)

type returnsCmd struct {
	portfolio string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "show per-period returns" }
func (*returnsCmd) Usage() string {
	return `returns [-portfolio <name>]

  Show the portfolio and per-ticker returns over the standard periods:
  yesterday, weekly, monthly, three months and year to date.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
}

func (c *returnsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r, err := client.Returns(ctx, portfolio)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReturnsMarkdown(r, Currency(settings)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"folioview/renderer"
)

type volatilityCmd struct {
	portfolio string
	daily     bool
}

func (*volatilityCmd) Name() string     { return "volatility" }
func (*volatilityCmd) Synopsis() string { return "show annualized volatility" }
func (*volatilityCmd) Usage() string {
	return `volatility [-portfolio <name>] [-daily]

  Show the annualized volatility of the portfolio and of each of its
  tickers. With -daily, show the trailing daily values instead of the
  whole-history figure.
`
}

func (c *volatilityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.BoolVar(&c.daily, "daily", false, "show the trailing daily values")
}

func (c *volatilityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.daily {
		series, err := client.DailyVolatility(ctx, portfolio)
		if err != nil {
			return fail(err)
		}
		byTicker, err := client.DailyTickerVolatility(ctx, portfolio)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.DailyVolatilityMarkdown(series, byTicker, 30))
		return subcommands.ExitSuccess
	}

	overall, err := client.Volatility(ctx, portfolio)
	if err != nil {
		return fail(err)
	}
	byTicker, err := client.TickerVolatility(ctx, portfolio)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.VolatilityMarkdown(overall, byTicker))
	return subcommands.ExitSuccess
}

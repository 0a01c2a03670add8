package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"folioview"
	"folioview/api"
	"folioview/fetch"
	"folioview/renderer"
)

type dashboardCmd struct {
	portfolio string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show KPI cards and live holdings" }
func (*dashboardCmd) Usage() string {
	return `dashboard [-portfolio <name>]

  Show the KPI cards and the live holdings of a portfolio.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	kpis, err := client.KPIs(ctx, portfolio)
	if err != nil {
		return fail(err)
	}
	// returns and holdings need authentication, KPIs do not; show what we can
	var returns *api.PeriodReturns
	if r, err := client.Returns(ctx, portfolio); err == nil {
		returns = r
	}
	var status *api.Status
	if s, err := client.Status(ctx, portfolio); err == nil {
		status = s
	}

	printMarkdown(renderer.DashboardMarkdown(kpis, returns, status, Currency(settings)))

	// compact preview: the last month of the portfolio against the settings
	// benchmarks, re-anchored at the window start
	sel := fetch.Selection{Portfolio: portfolio, Benchmarks: settings.Benchmarks}
	if frame, _, err := fetch.NewLoader(client).Load(ctx, sel); err == nil {
		if span, ok := frame.Span(); ok {
			window := folioview.NewRange(span.To.Add(-30), span.To)
			printMarkdown(renderer.ChartMarkdown(frame.Filter(window), folioview.SinceStart, Currency(settings)))
		}
	}
	return subcommands.ExitSuccess
}

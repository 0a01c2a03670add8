package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"folioview"
	"folioview/api"
)

type addCmd struct {
	portfolio string
	date      string
	ticker    string
	label     string
	quantity  float64
	price     float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `add -ticker <symbol> -label <buy|sell> -quantity <q> -price <p> [-date <date>] [-portfolio <name>]

  Record one transaction on the backend. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.StringVar(&c.date, "date", "", "transaction date (YYYY-MM-DD, defaults to today)")
	f.StringVar(&c.ticker, "ticker", "", "instrument ticker")
	f.StringVar(&c.label, "label", "buy", "transaction label: buy or sell")
	f.Float64Var(&c.quantity, "quantity", 0, "number of units")
	f.Float64Var(&c.price, "price", 0, "unit price")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity == 0 {
		fmt.Fprintln(os.Stderr, "-ticker and -quantity are required")
		return subcommands.ExitUsageError
	}
	if c.date == "" {
		c.date = folioview.Today().String()
	} else if _, err := folioview.ParseDate(c.date); err != nil {
		fmt.Fprintln(os.Stderr, "-date:", err)
		return subcommands.ExitUsageError
	}

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

	added, err := client.AddTransactions(ctx, portfolio, []api.Transaction{{
		Date:     c.date,
		Ticker:   c.ticker,
		Label:    c.label,
		Quantity: c.quantity,
		Price:    c.price,
	}})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %d transaction(s) on %s\n", len(added), portfolio)
	return subcommands.ExitSuccess
}

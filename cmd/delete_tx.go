package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteTxCmd struct {
	portfolio string
	id        int64
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction by id" }
func (*deleteTxCmd) Usage() string {
	return `delete-tx -id <id> [-portfolio <name>]

  Delete one transaction. Find the id in the transactions listing.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
	f.Int64Var(&c.id, "id", 0, "transaction id")
}

func (c *deleteTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "-id is required")
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

	if err := client.DeleteTransaction(ctx, portfolio, c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted transaction %d from %s\n", c.id, portfolio)
	return subcommands.ExitSuccess
}

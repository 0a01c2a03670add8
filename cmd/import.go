package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"folioview/api"
)

type importCmd struct {
	portfolio string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSON file" }
func (*importCmd) Usage() string {
	return `import [-portfolio <name>] <file.json>

  Import transactions in bulk. The file holds a JSON array of records in
  the same shape the transactions listing shows.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one file to import")
		return subcommands.ExitUsageError
	}

	b, err := os.ReadFile(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	var txs []api.Transaction
	if err := json.Unmarshal(b, &txs); err != nil {
		return fail(fmt.Errorf("%s: %w", f.Arg(0), err))
	}
	if len(txs) == 0 {
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
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

	added, err := client.AddTransactions(ctx, portfolio, txs)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d transaction(s) into %s\n", len(added), portfolio)
	return subcommands.ExitSuccess
}

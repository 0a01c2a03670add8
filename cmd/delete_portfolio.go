package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deletePortfolioCmd struct {
	yes bool
}

func (*deletePortfolioCmd) Name() string     { return "delete-portfolio" }
func (*deletePortfolioCmd) Synopsis() string { return "delete a whole portfolio" }
func (*deletePortfolioCmd) Usage() string {
	return `delete-portfolio [-yes] <name>

  Delete a portfolio and everything it holds on the backend. Asks for
  confirmation unless -yes is given.
`
}

func (c *deletePortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "skip the confirmation prompt")
}

func (c *deletePortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one portfolio name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	if !c.yes {
		fmt.Printf("Delete portfolio %q and all its transactions? [y/N] ", name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	client, err := NewClient()
	if err != nil {
		return fail(err)
	}
	if err := client.DeletePortfolio(ctx, name); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted portfolio %s\n", name)
	return subcommands.ExitSuccess
}

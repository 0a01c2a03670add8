package cmd

import (
	"bytes"
	"context"
	"flag"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type portfoliosCmd struct{}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list the portfolios the backend tracks" }
func (*portfoliosCmd) Usage() string {
	return `portfolios

  List the portfolios the backend tracks.
`
}

func (*portfoliosCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := NewClient()
	if err != nil {
		return fail(err)
	}
	names, err := client.Portfolios(ctx)
	if err != nil {
		return fail(err)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Portfolios")
	doc.BulletList(names...)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}

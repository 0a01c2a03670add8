package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type tickerCmd struct{}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "look up instrument details" }
func (*tickerCmd) Usage() string {
	return `ticker <symbol>

  Look up what the backend knows about an instrument: name, exchange,
  currency and whatever else its data source reports.
`
}

func (*tickerCmd) SetFlags(f *flag.FlagSet) {}

func (c *tickerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker symbol")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	client, err := NewClient()
	if err != nil {
		return fail(err)
	}
	info, err := client.TickerInfo(ctx, symbol)
	if err != nil {
		return fail(err)
	}

	// the field set depends on the instrument type, print whatever came back
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(symbol)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Field", "Value"},
		Rows:      [][]string{},
	}
	for _, k := range keys {
		table.Rows = append(table.Rows, []string{k, fmt.Sprint(info[k])})
	}
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}

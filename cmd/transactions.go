package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/renderer"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	n int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the most recent transactions" }
func (*transactionsCmd) Usage() string {
	return `sharpeful transactions [-n <count>]

  Lists the most recent transactions with their resolved execution price.
  Use -n -1 to list them all.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", renderer.RecentCount, "Number of transactions to list, -1 for all")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := ComputeDashboard(ctx, date.OneYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(d, c.n))
	return subcommands.ExitSuccess
}

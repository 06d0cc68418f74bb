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

type historyCmd struct {
	periodFlag
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the daily value of the portfolio over a period" }
func (*historyCmd) Usage() string {
	return `sharpeful history [-p <period>]

  Displays the value of the portfolio on every trading day of the period.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.period()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, err := ComputeDashboard(ctx, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing history: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(d))
	return subcommands.ExitSuccess
}

type rangeCmd struct{}

func (*rangeCmd) Name() string     { return "range" }
func (*rangeCmd) Synopsis() string { return "display the 52-week range of every held symbol" }
func (*rangeCmd) Usage() string {
	return `sharpeful range

  Displays where the latest price of every held symbol stands between its
  52-week low and high.
`
}

func (c *rangeCmd) SetFlags(f *flag.FlagSet) {}

func (c *rangeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := ComputeDashboard(ctx, date.OneYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing ranges: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RangeMarkdown(d))
	return subcommands.ExitSuccess
}

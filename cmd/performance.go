package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sharpeful/renderer"
	"github.com/google/subcommands"
)

type performanceCmd struct {
	periodFlag
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the return and risk metrics over a period" }
func (*performanceCmd) Usage() string {
	return `sharpeful performance [-p <period>]

  Displays the change, return, volatility, Sharpe and Sortino ratios, beta,
  alpha and max drawdown of the portfolio over the period, and how it compares
  to the benchmarks.

Usage Examples:
$ sharpeful performance -p 3M
$ sharpeful -benchmark QQQ performance -p ytd
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.period()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, err := ComputeDashboard(ctx, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing performance: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(d))
	return subcommands.ExitSuccess
}

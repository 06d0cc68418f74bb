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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the held positions valued at the latest prices" }
func (*holdingsCmd) Usage() string {
	return `sharpeful holdings

  Displays the positions held today with their shares, cost basis, latest price,
  value and gain, followed by the top holdings and the best performers.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := ComputeDashboard(ctx, date.OneYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(d))
	return subcommands.ExitSuccess
}

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

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the portfolio value by sector" }
func (*allocationCmd) Usage() string {
	return `sharpeful allocation

  Displays the value and weight of every sector held today.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := ComputeDashboard(ctx, date.OneYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(d))
	return subcommands.ExitSuccess
}

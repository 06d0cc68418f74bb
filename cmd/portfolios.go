package cmd

import (
	"bytes"
	"context"
	"flag"

	"github.com/etnz/sharpeful/sample"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type portfoliosCmd struct{}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list the sample portfolios" }
func (*portfoliosCmd) Usage() string {
	return `sharpeful portfolios

  Lists the sample portfolios that can be selected with -portfolio.
`
}

func (c *portfoliosCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rows := make([][]string, 0, len(sample.Options))
	for _, o := range sample.Options {
		id := o.ID
		if ledgerFile == "" && o.ID == portfolioID {
			id += " (selected)"
		}
		rows = append(rows, []string{id, o.Name})
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Portfolios")
	doc.Table(md.TableSet{Header: []string{"ID", "Name"}, Rows: rows})
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}

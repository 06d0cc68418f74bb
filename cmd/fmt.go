package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sharpeful"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `sharpeful -ledger <file> fmt [-o <file>]

  Validates and formats the ledger file. This command reads all transactions,
  assigns an id to those missing one, sorts them by execution time, and writes them back in a canonical JSONL format.
  By default, the ledger is formatted in-place.

Usage Examples:
$ sharpeful -ledger transactions.jsonl fmt
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file, the ledger itself by default")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if ledgerFile == "" {
		fmt.Fprintf(os.Stderr, "Error: no ledger file, use -ledger or %s\n", EnvLedgerFile)
		return subcommands.ExitUsageError
	}
	in, err := os.ReadFile(ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := sharpeful.DecodeTransactions(bytes.NewReader(in))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid ledger %q: %v\n", ledgerFile, err)
		return subcommands.ExitFailure
	}

	var out bytes.Buffer
	if err := sharpeful.EncodeTransactions(&out, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	target := p.outputFile
	if target == "" {
		target = ledgerFile
	}
	if err := os.WriteFile(target, out.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Ledger file '%s' has been formatted (%d transactions).\n", target, len(txs))
	return subcommands.ExitSuccess
}

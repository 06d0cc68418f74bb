package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/sharpeful/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&portfoliosCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&rangeCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "ledger")

	c.Register(&serveCmd{}, "services")
	c.Register(&AssistCmd{}, "services")
}

// Known reports whether name is a subcommand registered in c.
func Known(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// Completion describes the command line of c for shell completion.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: predictors(fs)}
		if cmd.Name() == "topic" {
			if topics, err := docs.List(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// predictors guesses the values of the flags in fs.
func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			flags[f.Name] = predict.Set(strings.Split(periodNames(), ", "))
		case "feed":
			flags[f.Name] = predict.Set{"massive", "alpaca", "eodhd"}
		case "ledger":
			flags[f.Name] = predict.Files("*.jsonl")
		case "instruments":
			flags[f.Name] = predict.Files("*.json")
		case "frontmatter", "o":
			flags[f.Name] = predict.Files("*")
		case "cache-dir":
			flags[f.Name] = predict.Dirs("*")
		default:
			flags[f.Name] = predict.Nothing
		}
	})
	return flags
}

package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestRegister(t *testing.T) {
	global := flag.NewFlagSet("sharpeful", flag.ContinueOnError)
	RegisterFlags(global)
	c := subcommands.NewCommander(global, "sharpeful")
	Register(c)

	for _, name := range []string{"holdings", "performance", "publish", "fmt", "serve", "assist"} {
		if !Known(c, name) {
			t.Errorf("Known(%q) = false", name)
		}
	}
	if Known(c, "hello") {
		t.Error("Known(hello) = true")
	}

	completion := Completion(c, global)
	if completion.Flags["ledger"] == nil || completion.Flags["feed"] == nil {
		t.Errorf("global flags not completed: %v", completion.Flags)
	}
	perf := completion.Sub["performance"]
	if perf == nil || perf.Flags["p"] == nil {
		t.Fatalf("performance completion = %+v, want the -p flag", perf)
	}
	if got := perf.Flags["p"].Predict(""); len(got) != 7 {
		t.Errorf("-p predictions = %v, want the 7 periods", got)
	}
}

package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/sharpeful/date"
	"github.com/google/subcommands"
)

func TestPublish(t *testing.T) {
	withFake(t, &fakeFeed{})
	dir := t.TempDir()
	tpl := writeFile(t, "front.tpl", "---\ntitle: {{.Name}} {{.Period}}\nto: {{.To}}\n---\n")

	c := &publishCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-o", dir, "-frontmatter", tpl}); err != nil {
		t.Fatal(err)
	}
	if got := c.Execute(context.Background(), f); got != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", got)
	}

	for _, p := range date.Periods {
		content, err := os.ReadFile(filepath.Join(dir, "portfolio-3", p.String()+".md"))
		if err != nil {
			t.Fatalf("report %s: %v", p, err)
		}
		s := string(content)
		if !strings.HasPrefix(s, "---\ntitle: Verification Portfolio QQQ "+p.String()+"\nto: 2025-06-30\n---\n") {
			t.Errorf("report %s front matter = %q", p, s[:min(len(s), 80)])
		}
		if !strings.Contains(s, "# Holdings of Verification Portfolio QQQ") {
			t.Errorf("report %s has no holdings", p)
		}
	}
}

func TestPublishHTML(t *testing.T) {
	withFake(t, &fakeFeed{})
	dir := t.TempDir()
	c := &publishCmd{outputDir: dir, html: true}
	if got := c.Execute(context.Background(), flag.NewFlagSet("test", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", got)
	}
	content, err := os.ReadFile(filepath.Join(dir, "portfolio-3", "YTD.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "<title>Verification Portfolio QQQ - YTD</title>") {
		t.Errorf("html page = %.200s", content)
	}
}

func TestFmt(t *testing.T) {
	withFake(t, &fakeFeed{})
	ledgerFile = writeFile(t, "ledger.jsonl", testLedger)

	c := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	if got := c.Execute(context.Background(), f); got != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", got)
	}
	got, err := os.ReadFile(ledgerFile)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"1","symbol":"MSFT","type":"buy","quantity":5,"datetime":"2024-02-01T15:30:00Z","date":"2024-02-01"}
{"id":"2","symbol":"MSFT","type":"sell","quantity":1,"datetime":"2024-03-01T00:00:00Z","date":"2024-03-01"}
`
	if string(got) != want {
		t.Errorf("formatted ledger =\n%s\nwant\n%s", got, want)
	}

	ledgerFile = ""
	if got := c.Execute(context.Background(), f); got != subcommands.ExitUsageError {
		t.Errorf("Execute() without ledger = %v, want ExitUsageError", got)
	}
}

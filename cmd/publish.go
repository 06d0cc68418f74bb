package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/renderer"
	"github.com/google/subcommands"
)

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
	html           bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the dashboard of the portfolio for every period" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>] [-html]

  Generates the full dashboard (holdings, performance, allocation, history and
  transactions) for every period and saves them in a directory named after the
  portfolio, one file per period.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
	f.BoolVar(&c.html, "html", false, "Generate standalone HTML pages instead of markdown")
}

// frontMatter is the data of the front matter template.
type frontMatter struct {
	Portfolio string
	Name      string
	Period    string
	From, To  date.Date
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	source, err := newFeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open the feed: %v\n", err)
		return subcommands.ExitFailure
	}
	pf, prices, err := loadMarket(ctx, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load the portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	dir := filepath.Join(c.outputDir, pf.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, p := range date.Periods {
		d := sharpeful.NewDashboard(pf, prices, p, Assumptions())
		content, err := c.render(d, frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render %s: %v\n", p, err)
			return subcommands.ExitFailure
		}
		name := filepath.Join(dir, c.fileName(p))
		if err := os.WriteFile(name, content, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Fprintf(stdout, "Published %d reports of %q in %s\n", len(date.Periods), pf.Name, dir)
	return subcommands.ExitSuccess
}

func (c *publishCmd) fileName(p date.Period) string {
	if c.html {
		return p.String() + ".html"
	}
	return p.String() + ".md"
}

func (c *publishCmd) render(d *sharpeful.Dashboard, frontMatterTpl *template.Template) ([]byte, error) {
	markdown := renderer.DashboardMarkdown(d)
	if c.html {
		return renderer.HTML(fmt.Sprintf("%s - %s", d.Name, d.Period), markdown)
	}
	var buf bytes.Buffer
	if frontMatterTpl != nil {
		data := frontMatter{Portfolio: d.Portfolio, Name: d.Name, Period: d.Period.String()}
		if n := len(d.Series); n > 0 {
			data.From, data.To = d.Series[0].Date, d.Series[n-1].Date
		}
		if err := frontMatterTpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("failed to execute front matter template: %w", err)
		}
	}
	buf.WriteString(markdown)
	return buf.Bytes(), nil
}

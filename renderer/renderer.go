// Package renderer renders dashboards as markdown reports and HTML pages.
package renderer

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/etnz/sharpeful"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DashboardMarkdown renders every report of the dashboard in a single document.
func DashboardMarkdown(d *sharpeful.Dashboard) string {
	// The notice is rendered once on top, not per section.
	quiet := *d
	quiet.Unavailable = false

	var b strings.Builder
	if d.Unavailable {
		fmt.Fprintf(&b, "> %s\n\n", unavailableNotice)
	}
	for _, section := range []string{
		HoldingsMarkdown(&quiet),
		PerformanceMarkdown(&quiet),
		AllocationMarkdown(&quiet),
		HistoryMarkdown(&quiet),
		TransactionsMarkdown(&quiet, RecentCount),
	} {
		b.WriteString(section)
		b.WriteString("\n")
	}
	return b.String()
}

// HTML converts a markdown document into a standalone HTML page.
func HTML(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

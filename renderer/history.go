package renderer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/etnz/sharpeful"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the daily portfolio value over the dashboard period.
func HistoryMarkdown(d *sharpeful.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History of %s over %s", d.Name, d.Period))
	notice(doc, d)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Value", "Change"},
		Rows:      [][]string{},
	}
	for i, p := range d.Series {
		change := ""
		if i > 0 {
			change = signed(p.Value - d.Series[i-1].Value)
		}
		table.Rows = append(table.Rows, []string{p.Date.String(), usd(p.Value), change})
	}
	doc.Table(table)
	return doc.String()
}

// RangeMarkdown renders where the latest price of each symbol stands in its 52-week range.
func RangeMarkdown(d *sharpeful.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("52-Week Range")
	notice(doc, d)

	symbols := make([]string, 0, len(d.Ranges))
	for s := range d.Ranges {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Low", "High", "Position"},
		Rows:      [][]string{},
	}
	for _, s := range symbols {
		r := d.Ranges[s]
		table.Rows = append(table.Rows, []string{s, usd(r.Low), usd(r.High), fmt.Sprintf("%.0f%%", r.Percent)})
	}
	doc.Table(table)
	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/sharpeful"
	md "github.com/nao1215/markdown"
)

// unavailableNotice is written once on top of a report when the feed failed.
const unavailableNotice = "Market data is unavailable for part of the portfolio, some figures are incomplete."

func notice(doc *md.Markdown, d *sharpeful.Dashboard) {
	if d.Unavailable {
		doc.Blockquote(unavailableNotice)
	}
}

func valuationRows(vals []sharpeful.Valuation) [][]string {
	rows := make([][]string, 0, len(vals))
	for _, v := range vals {
		p := Placeholder
		if v.Priced {
			p = price(v.Price)
		}
		rows = append(rows, []string{
			v.Symbol,
			v.Name,
			v.Sector.String(),
			shares(v.Shares),
			usd(v.CostBasis.InexactFloat64()),
			p,
			usd(v.Value),
			signed(v.Gain),
			percent(v.GainPercent),
		})
	}
	return rows
}

func valuationTable(vals []sharpeful.Valuation) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Sector", "Shares", "Cost Basis", "Price", "Value", "Gain", "Gain %"},
		Rows:   valuationRows(vals),
	}
}

// HoldingsMarkdown renders the current holdings with their valuation, the top
// holdings and the best performers.
func HoldingsMarkdown(d *sharpeful.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holdings of %s", d.Name))
	notice(doc, d)
	if len(d.Holdings) == 0 {
		doc.PlainText("No position is currently held.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("%s: %s, %s: %s, %s: %s (%s)",
		md.Bold("Total Value"), usd(d.Totals.Value),
		md.Bold("Total Cost"), usd(d.Totals.Cost),
		md.Bold("Total Gain"), signed(d.Totals.Gain), percent(d.Totals.GainPercent),
	))
	doc.Table(valuationTable(d.Holdings))

	doc.H2("Top Holdings")
	doc.Table(valuationTable(d.TopHoldings))

	doc.H2("Best Performers")
	best := make([]string, 0, len(d.Best))
	for _, v := range d.Best {
		best = append(best, fmt.Sprintf("%s %s", md.Bold(v.Symbol), percent(v.GainPercent)))
	}
	doc.OrderedList(best...)

	return doc.String()
}

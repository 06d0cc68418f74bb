package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/sharpeful"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders the risk and return metrics of the dashboard period,
// compared to the benchmarks.
func PerformanceMarkdown(d *sharpeful.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	p := d.Performance

	doc.H1(fmt.Sprintf("Performance of %s over %s", d.Name, p.Period))
	notice(doc, d)
	if !p.From.IsZero() {
		doc.PlainText(fmt.Sprintf("From %s to %s.", p.From, p.To))
	}

	drawdown := fraction(p.Drawdown.Drawdown)
	if p.Drawdown.Drawdown < 0 {
		drawdown = fmt.Sprintf("%s (%s to %s)", drawdown, p.Drawdown.Peak, p.Drawdown.Trough)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Change", signed(p.Change)},
			{"Return", percent(p.Return)},
			{"Volatility", fraction(p.Volatility)},
			{"Sharpe Ratio", ratio(p.Sharpe)},
			{"Sortino Ratio", ratio(p.Sortino)},
			{fmt.Sprintf("Beta (%s)", p.Benchmark), ratio(p.Beta)},
			{fmt.Sprintf("Alpha (%s)", p.Benchmark), fraction(p.Alpha)},
			{"Max Drawdown", drawdown},
		},
	})

	doc.H2("Benchmarks")
	rows := make([][]string, 0, len(p.Benchmarks))
	for _, b := range p.Benchmarks {
		rows = append(rows, []string{b.Symbol, percent(b.Return), percent(p.Return - b.Return)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Benchmark", "Return", "Excess"},
		Rows:      rows,
	})
	if p.Beat {
		doc.PlainText(fmt.Sprintf("The portfolio %s %s.", md.Bold("beats"), p.Benchmark))
	} else {
		doc.PlainText(fmt.Sprintf("The portfolio %s %s.", md.Bold("trails"), p.Benchmark))
	}
	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/sharpeful"
	md "github.com/nao1215/markdown"
)

// RecentCount is the default number of transactions shown.
const RecentCount = 20

// TransactionsMarkdown renders the n most recent transactions, every one of them if n < 0.
// A transaction whose price could not be resolved shows a placeholder price and value.
func TransactionsMarkdown(d *sharpeful.Dashboard, n int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	txs := d.Recent(n)
	doc.H1(fmt.Sprintf("Transactions of %s", d.Name))
	notice(doc, d)
	doc.PlainText(fmt.Sprintf("%d of %d transactions, most recent first.", len(txs), len(d.Transactions)))

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		p := tx.PriceOrZero().InexactFloat64()
		value := Placeholder
		if p != 0 {
			value = usd(p * tx.Quantity.InexactFloat64())
		}
		rows = append(rows, []string{
			tx.Datetime.Format("2006-01-02 15:04"),
			tx.Symbol,
			string(tx.Type),
			shares(tx.Quantity),
			price(p),
			value,
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Symbol", "Type", "Quantity", "Price", "Value"},
		Rows:      rows,
	})
	return doc.String()
}

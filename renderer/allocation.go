package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/sharpeful"
	md "github.com/nao1215/markdown"
)

// AllocationMarkdown renders the sector allocation.
func AllocationMarkdown(d *sharpeful.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation of %s", d.Name))
	notice(doc, d)
	rows := make([][]string, 0, len(d.Allocation))
	for _, w := range d.Allocation {
		rows = append(rows, []string{w.Sector.String(), usd(w.Value), fmt.Sprintf("%.2f%%", w.Percent)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Sector", "Value", "Weight"},
		Rows:      rows,
	})
	return doc.String()
}

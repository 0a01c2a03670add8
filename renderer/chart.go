package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"folioview"
)

// ChartMarkdown renders a merged frame as a date-by-series table followed by
// the per-series latest values. Absent points render as "-", never as zero.
func ChartMarkdown(f *folioview.Frame, vt folioview.ValueType, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Performance (%s)", vt))

	if f == nil || f.Len() == 0 || !enoughFor(f, vt) {
		doc.PlainText("Not enough data for the selected range.")
		return doc.String()
	}

	names := f.Names()
	header := append([]string{"Date"}, names...)
	align := make([]md.TableAlignment, len(header))
	align[0] = md.AlignLeft
	for i := 1; i < len(align); i++ {
		align[i] = md.AlignRight
	}
	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}

	cols := make([][]folioview.Value, len(names))
	for i, name := range names {
		cols[i] = f.Column(name, vt)
	}
	for i, day := range f.Days() {
		row := make([]string, 0, len(header))
		row = append(row, day.String())
		for _, col := range cols {
			row = append(row, cell(col[i], vt, currency))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.H2("Latest")
	latest := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Series", "Value"},
		Rows:      [][]string{},
	}
	for _, name := range names {
		latest.Rows = append(latest.Rows, []string{name, cell(f.Final(name, vt), vt, currency)})
	}
	doc.Table(latest)

	return doc.String()
}

// enoughFor reports whether any series keeps enough points to plot vt:
// percent projections need a predecessor or baseline, so a range filter
// that leaves a single point per series has nothing to show.
func enoughFor(f *folioview.Frame, vt folioview.ValueType) bool {
	need := 1
	if vt.IsPercent() {
		need = 2
	}
	for _, name := range f.Names() {
		if f.Present(name) >= need {
			return true
		}
	}
	return false
}

// cell formats one projected value for a table cell.
func cell(v folioview.Value, vt folioview.ValueType, currency string) string {
	if !v.Valid {
		return "-"
	}
	if vt.IsPercent() {
		return folioview.Percent(v.Float).SignedString()
	}
	return Cash(v.Float, currency).String()
}

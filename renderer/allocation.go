package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	md "github.com/nao1215/markdown"

	"folioview"
	"folioview/api"
)

// AllocationMarkdown renders the asset allocation, largest slice first.
// grouping names the backend grouping dimension ("ticker", "sector", ...).
func AllocationMarkdown(slices []api.AllocationSlice, grouping, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Allocation by %s", grouping))

	if len(slices) == 0 {
		doc.PlainText("Nothing to allocate.")
		return doc.String()
	}

	rows := folioview.SortBy(slices, func(s api.AllocationSlice) any { return s.Value }, folioview.Descending)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{titled(grouping), "Name", "Value", "Share", ""},
		Rows:      [][]string{},
	}
	var total float64
	for _, s := range rows {
		total += s.Value
	}
	for _, s := range rows {
		label := s.Group
		if label == "" {
			label = s.Ticker
		}
		share, bar := "-", ""
		pct, ok := 0.0, false
		if s.AllocationPct != nil {
			pct, ok = *s.AllocationPct, true
		} else if total > 0 {
			pct, ok = 100*s.Value/total, true
		}
		if ok {
			share = folioview.Percent(pct).String()
			bar = strings.Repeat("█", int(pct/5))
		}
		table.Rows = append(table.Rows, []string{
			label,
			s.Name,
			Cash(s.Value, currency).String(),
			share,
			bar,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s", Cash(total, currency)))
	return doc.String()
}

func titled(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

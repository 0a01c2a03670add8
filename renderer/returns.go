package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"folioview"
	"folioview/api"
)

// ReturnsMarkdown renders the per-period portfolio returns, then the
// per-ticker return percentages across the same periods.
func ReturnsMarkdown(r *api.PeriodReturns, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Returns")

	type period struct {
		label string
		ret   *api.Returns
	}
	periods := []period{
		{"Yesterday", r.Yesterday},
		{"Weekly", r.Weekly},
		{"Monthly", r.Monthly},
		{"3 months", r.ThreeMonth},
		{"Year to date", r.YTD},
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Period", "Start", "End", "Return"},
		Rows:      [][]string{},
	}
	for _, p := range periods {
		row := []string{p.label, "-", "-", "-"}
		if p.ret != nil && p.ret.Portfolio != nil {
			row[1] = cash(p.ret.Portfolio.StartValue, currency)
			row[2] = cash(p.ret.Portfolio.EndValue, currency)
			row[3] = pct(p.ret.Portfolio.ReturnPct)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	tickers := tickerSet(periods, func(p period) *api.Returns { return p.ret })
	if len(tickers) == 0 {
		return doc.String()
	}

	doc.H2("By ticker")
	header := []string{"Ticker"}
	align := []md.TableAlignment{md.AlignLeft}
	for _, p := range periods {
		header = append(header, p.label)
		align = append(align, md.AlignRight)
	}
	byTicker := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}
	for _, t := range tickers {
		row := []string{t}
		for _, p := range periods {
			v := "-"
			if p.ret != nil {
				if pr := p.ret.Tickers[t]; pr != nil {
					v = pct(pr.ReturnPct)
				}
			}
			row = append(row, v)
		}
		byTicker.Rows = append(byTicker.Rows, row)
	}
	doc.Table(byTicker)
	return doc.String()
}

// tickerSet collects every ticker seen in any period, locale sorted.
func tickerSet[T any](periods []T, ret func(T) *api.Returns) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range periods {
		r := ret(p)
		if r == nil {
			continue
		}
		for t := range r.Tickers {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return folioview.SortBy(out, func(t string) any { return t }, folioview.Ascending)
}

func pct(p *float64) string {
	if p == nil {
		return "-"
	}
	return folioview.Percent(*p).SignedString()
}

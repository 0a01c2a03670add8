package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"folioview"
)

// VolatilityMarkdown renders the annualized volatility of the portfolio,
// then of each of its tickers.
func VolatilityMarkdown(portfolio *float64, tickers map[string]*float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Volatility")
	doc.PlainText(fmt.Sprintf("Portfolio (annualized): %s", vol(portfolio)))

	if len(tickers) == 0 {
		return doc.String()
	}
	doc.H2("By ticker")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Ticker", "Volatility"},
		Rows:      [][]string{},
	}
	var symbols []string
	for t := range tickers {
		symbols = append(symbols, t)
	}
	symbols = folioview.SortBy(symbols, func(t string) any { return t }, folioview.Ascending)
	for _, t := range symbols {
		table.Rows = append(table.Rows, []string{t, vol(tickers[t])})
	}
	doc.Table(table)
	return doc.String()
}

// DailyVolatilityMarkdown renders the trailing daily volatility values of
// the portfolio and each ticker, latest day first, capped at n rows. The
// backend emits the daily series without dates, so rows count back from the
// most recent sample.
func DailyVolatilityMarkdown(portfolio []*float64, tickers map[string][]*float64, n int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Daily volatility")

	depth := len(portfolio)
	var symbols []string
	for t, vs := range tickers {
		symbols = append(symbols, t)
		depth = max(depth, len(vs))
	}
	if depth == 0 {
		doc.PlainText("No volatility history.")
		return doc.String()
	}
	symbols = folioview.SortBy(symbols, func(t string) any { return t }, folioview.Ascending)
	depth = min(depth, n)

	header := []string{"Day", "Portfolio"}
	align := []md.TableAlignment{md.AlignLeft, md.AlignRight}
	for _, t := range symbols {
		header = append(header, t)
		align = append(align, md.AlignRight)
	}
	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}
	for back := 0; back < depth; back++ {
		row := []string{fmt.Sprintf("t-%d", back), tail(portfolio, back)}
		for _, t := range symbols {
			row = append(row, tail(tickers[t], back))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// tail returns the value back positions from the end of vs, "-" when there
// is no sample there.
func tail(vs []*float64, back int) string {
	i := len(vs) - 1 - back
	if i < 0 {
		return "-"
	}
	return vol(vs[i])
}

func vol(v *float64) string {
	if v == nil {
		return "-"
	}
	return folioview.Percent(*v).String()
}
